package services

import (
	"io"
	"log/slog"
	"testing"

	"github.com/natachabertin/urlshortener/internal/models"
	"github.com/natachabertin/urlshortener/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.URL{}, &models.Click{}, &models.AuditLog{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testEnv struct {
	db        *gorm.DB
	urls      *repository.URLRepository
	users     *repository.UserRepository
	audit     *AuditService
	shortener *ShortenerService
	resolver  *ResolverService
	auth      *AuthService
	stats     *StatsService
}

func setupTestServices(t *testing.T) *testEnv {
	t.Helper()
	db := setupTestDB(t)
	logger := testLogger()

	urls := repository.NewURLRepository(db)
	users := repository.NewUserRepository(db)
	audit := NewAuditService(db, logger)

	return &testEnv{
		db:        db,
		urls:      urls,
		users:     users,
		audit:     audit,
		shortener: NewShortenerService(urls, nil, audit, logger),
		resolver:  NewResolverService(urls, nil, logger),
		auth:      NewAuthService(users, audit, logger),
		stats:     NewStatsService(urls, logger),
	}
}

func (e *testEnv) createUser(t *testing.T, email string) *models.User {
	t.Helper()
	user := &models.User{Email: email, PasswordHash: "x", APIKey: "key-" + email}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}
