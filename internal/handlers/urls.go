package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/natachabertin/urlshortener/internal/repository"

	"github.com/gin-gonic/gin"
)

// pagination reads offset/limit query params with sane bounds.
func pagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	return offset, limit
}

func (h *Handler) ListURLs(c *gin.Context) {
	offset, limit := pagination(c)

	urls, err := h.shortenerService.ListActive(offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list URLs"})
		return
	}

	c.JSON(http.StatusOK, urls)
}

func (h *Handler) DisableURL(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL id"})
		return
	}

	url, err := h.shortenerService.DisableURL(c.Request.Context(), uint(id), userID, c.ClientIP())
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "URL not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disable URL"})
		return
	}

	c.JSON(http.StatusOK, url)
}

func (h *Handler) ShowURLStats(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL id"})
		return
	}

	stats, err := h.statsService.URLStats(uint(id))
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "URL not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) ListURLClicks(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid URL id"})
		return
	}
	offset, limit := pagination(c)

	clicks, err := h.statsService.ListClicks(uint(id), offset, limit)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "URL not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list clicks"})
		return
	}

	c.JSON(http.StatusOK, clicks)
}
