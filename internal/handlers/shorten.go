package handlers

import (
	"errors"
	"net/http"

	"github.com/natachabertin/urlshortener/internal/metrics"
	"github.com/natachabertin/urlshortener/internal/repository"
	"github.com/natachabertin/urlshortener/internal/services"

	"github.com/gin-gonic/gin"
)

type ShortenRequest struct {
	TargetURL         string `json:"target_url" binding:"required,url"`
	CustomToken       string `json:"custom_token,omitempty"`
	Campaign          string `json:"campaign,omitempty"`
	ExpirationSeconds *int   `json:"expiration_seconds,omitempty"`
}

// ShortenURL handles the API request to shorten a URL
func (h *Handler) ShortenURL(c *gin.Context) {
	var req ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dto := services.ShortenDTO{
		OwnerID:           userID,
		TargetURL:         req.TargetURL,
		CustomToken:       req.CustomToken,
		Campaign:          req.Campaign,
		ExpirationSeconds: req.ExpirationSeconds,
		IPAddress:         c.ClientIP(),
	}

	newURL, err := h.shortenerService.CreateShortURL(dto)
	if errors.Is(err, repository.ErrConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": "Short token already taken"})
		return
	}
	if errors.Is(err, services.ErrTokenExhausted) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not allocate a short token"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create short URL"})
		return
	}

	metrics.URLsCreated.Inc()
	c.JSON(http.StatusCreated, gin.H{
		"id":          newURL.ID,
		"short_token": newURL.ShortToken,
		"short_url":   services.ShortURLFor(h.cfg.BaseURL, newURL.ShortToken),
		"target_url":  newURL.TargetURL,
	})
}
