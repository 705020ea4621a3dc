package handlers

import (
	"github.com/natachabertin/urlshortener/internal/metrics"
	"github.com/natachabertin/urlshortener/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func (h *Handler) SetupRouter(rateLimiter *services.IPRateLimiter) *gin.Engine {
	r := gin.Default()

	// Middleware
	r.Use(metrics.Middleware())
	if rateLimiter != nil {
		r.Use(h.RateLimitMiddleware(rateLimiter))
	}

	store := cookie.NewStore([]byte(h.cfg.SessionSecret))
	r.Use(sessions.Sessions("urlshortener_session", store))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Public Routes
	r.POST("/api/register", h.RegisterUser)
	r.POST("/api/login", h.LoginUser)
	r.POST("/api/logout", h.LogoutUser)

	// Protected Routes
	authorized := r.Group("/api/v1")
	authorized.Use(h.AuthRequired())
	{
		authorized.POST("/urls", h.ShortenURL)
		authorized.GET("/urls", h.ListURLs)
		authorized.DELETE("/urls/:id", h.DisableURL)
		authorized.GET("/urls/:id/stats", h.ShowURLStats)
		authorized.GET("/urls/:id/clicks", h.ListURLClicks)
		authorized.GET("/users", h.ListUsers)
		authorized.GET("/users/:id", h.GetUser)
		authorized.POST("/auth/apikey", h.GenerateNewAPIKey)
	}

	// Catch-all Redirects
	r.GET("/:token", h.RedirectToURL)
	r.GET("/:token/qr", h.LinkQRCode)

	return r
}
