package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/natachabertin/urlshortener/internal/models"

	"gorm.io/gorm"
)

// AuditService persists an append-only trail of account and link actions.
// Entries go through a buffered channel so the request path never waits on
// the audit insert; a full buffer drops the entry rather than blocking.
type AuditService struct {
	db      *gorm.DB
	logger  *slog.Logger
	entries chan models.AuditLog
}

func NewAuditService(db *gorm.DB, logger *slog.Logger) *AuditService {
	return &AuditService{
		db:      db,
		logger:  logger,
		entries: make(chan models.AuditLog, 100),
	}
}

func (s *AuditService) Start(ctx context.Context) {
	s.logger.Info("Audit worker starting")
	for {
		select {
		case entry := <-s.entries:
			if err := s.db.Create(&entry).Error; err != nil {
				s.logger.Error("Failed to write audit log", "error", err)
			}
		case <-ctx.Done():
			s.logger.Info("Audit worker stopping")
			return
		}
	}
}

func (s *AuditService) LogAction(userID *uint, action, entityID string, details interface{}, ip string) {
	var detailStr string
	if details != nil {
		detailBytes, _ := json.Marshal(details)
		detailStr = string(detailBytes)
	}

	entry := models.AuditLog{
		UserID:    userID,
		Action:    action,
		EntityID:  entityID,
		Details:   detailStr,
		IPAddress: ip,
		Timestamp: time.Now(),
	}

	select {
	case s.entries <- entry:
	default:
		s.logger.Warn("Audit channel full, dropping log", "action", action)
	}
}

// Drain writes all buffered entries synchronously. Used by tests and
// shutdown paths where the worker goroutine is not running.
func (s *AuditService) Drain() {
	for {
		select {
		case entry := <-s.entries:
			if err := s.db.Create(&entry).Error; err != nil {
				s.logger.Error("Failed to write audit log", "error", err)
			}
		default:
			return
		}
	}
}
