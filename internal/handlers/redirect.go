package handlers

import (
	"errors"
	"net/http"

	"github.com/natachabertin/urlshortener/internal/metrics"
	"github.com/natachabertin/urlshortener/internal/repository"
	"github.com/natachabertin/urlshortener/internal/services"

	"github.com/gin-gonic/gin"
)

// RedirectToURL resolves a short token, records the visit and issues the
// redirect. The click is persisted before the response goes out; if the
// insert fails the visitor gets a 500 instead of an unaccounted redirect.
func (h *Handler) RedirectToURL(c *gin.Context) {
	token := c.Param("token")

	meta := services.ClickMetadata{
		Referer:   c.Request.Referer(),
		UserAgent: c.Request.UserAgent(),
		Viewport:  c.GetHeader("X-Viewport"),
	}

	target, err := h.resolverService.ResolveAndRecord(c.Request.Context(), token, meta)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}
	if err != nil {
		h.logger.Error("Resolution failed", "token", token, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	metrics.RedirectsTotal.Inc()
	metrics.ClicksRecorded.Inc()
	c.Redirect(http.StatusFound, target)
}

// LinkQRCode renders a QR code PNG pointing at the short link. Only active
// links get a code.
func (h *Handler) LinkQRCode(c *gin.Context) {
	token := c.Param("token")

	if _, err := h.resolverService.Peek(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Link not found"})
		return
	}

	png, err := h.qrService.PNG(services.ShortURLFor(h.cfg.BaseURL, token), 256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}
