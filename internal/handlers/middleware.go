package handlers

import (
	"net/http"

	"github.com/natachabertin/urlshortener/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware rejects requests from IPs exceeding their budget.
func (h *Handler) RateLimitMiddleware(limiter *services.IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		l := limiter.GetLimiter(c.ClientIP())
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}

// AuthRequired accepts a session cookie, HTTP Basic credentials or an
// X-API-Key header, in that order. Whichever succeeds, the resolved user id
// lands in the request context under "user_id".
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Session
		session := sessions.Default(c)
		if userID, ok := session.Get("user_id").(uint); ok {
			c.Set("user_id", userID)
			c.Next()
			return
		}

		// 2. HTTP Basic: email + password
		if email, password, ok := c.Request.BasicAuth(); ok {
			user, err := h.authService.Authenticate(email, password, c.ClientIP())
			if err == nil {
				c.Set("user_id", user.ID)
				c.Next()
				return
			}
		}

		// 3. API Key
		if apiKey := c.GetHeader("X-API-Key"); apiKey != "" {
			user, err := h.authService.GetUserByAPIKey(apiKey)
			if err == nil {
				c.Set("user_id", user.ID)
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
}

// currentUserID reads the authenticated user set by AuthRequired.
func currentUserID(c *gin.Context) (uint, bool) {
	if val, exists := c.Get("user_id"); exists {
		if id, ok := val.(uint); ok {
			return id, true
		}
	}
	return 0, false
}
