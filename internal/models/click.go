package models

import (
	"errors"
	"time"
)

// Click is one successful resolution of a short token. Rows are immutable
// and are never deleted, even after their URL is disabled.
type Click struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	URLID     uint      `gorm:"not null;index" json:"url_id"`
	VisitedAt time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"visited_at"`
	Referer   string    `gorm:"size:255" json:"referer,omitempty"`
	UserAgent string    `gorm:"size:255" json:"user_agent,omitempty"`
	Viewport  string    `gorm:"size:50" json:"viewport,omitempty"`
}

func NewClick(urlID uint, visitedAt time.Time, referer, userAgent, viewport string) (*Click, error) {
	if urlID == 0 {
		return nil, errors.New("url id is required")
	}
	if visitedAt.IsZero() {
		visitedAt = time.Now()
	}
	return &Click{
		URLID:     urlID,
		VisitedAt: visitedAt,
		Referer:   referer,
		UserAgent: userAgent,
		Viewport:  viewport,
	}, nil
}
