package handlers

import (
	"io"
	"log/slog"
	"testing"

	"github.com/natachabertin/urlshortener/internal/config"
	"github.com/natachabertin/urlshortener/internal/models"
	"github.com/natachabertin/urlshortener/internal/repository"
	"github.com/natachabertin/urlshortener/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestHandler(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.URL{}, &models.Click{}, &models.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Config{
		BaseURL:       "http://localhost:8080",
		SessionSecret: "test-secret-12345678901234567890123456789012",
	}

	urls := repository.NewURLRepository(db)
	users := repository.NewUserRepository(db)
	audit := services.NewAuditService(db, logger)
	resolver := services.NewResolverService(urls, nil, logger)
	shortener := services.NewShortenerService(urls, nil, audit, logger)
	auth := services.NewAuthService(users, audit, logger)
	stats := services.NewStatsService(urls, logger)
	qr := services.NewQRService()

	h := NewHandler(cfg, logger, resolver, shortener, auth, stats, qr)
	return h, db
}

func setupTestRouter(h *Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return h.SetupRouter(nil)
}

func createTestUser(t *testing.T, db *gorm.DB, email, apiKey string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", APIKey: apiKey}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}
