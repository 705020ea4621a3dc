package models

import (
	"errors"
	"time"
)

type URL struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ShortToken string `gorm:"unique;not null;size:20;index" json:"short_token"`
	TargetURL  string `gorm:"not null;type:text" json:"target_url"`
	OwnerID    uint   `gorm:"not null;index" json:"owner_id"`
	Owner      *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`

	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP;index" json:"created_at"`
	// Retention hint in seconds, interpreted by housekeeping jobs outside
	// this service. The redirect path does not enforce it.
	ExpirationSeconds *int       `json:"expiration_seconds,omitempty"`
	LastAccessAt      *time.Time `json:"last_access_at,omitempty"`
	IsActive          bool       `gorm:"default:true;index" json:"is_active"`
	DeletedAt         *time.Time `json:"deleted_at,omitempty"`
	Campaign          string     `gorm:"size:120;index" json:"campaign,omitempty"`

	Clicks []Click `gorm:"foreignKey:URLID" json:"clicks,omitempty"`
}

func (URL) TableName() string {
	return "urls"
}

// NewURL builds an active URL record. Token and target validation happens
// here so repositories only ever see structurally complete rows.
func NewURL(token, target string, ownerID uint, campaign string, expirationSeconds *int) (*URL, error) {
	if token == "" {
		return nil, errors.New("short token is required")
	}
	if target == "" {
		return nil, errors.New("target url is required")
	}
	if ownerID == 0 {
		return nil, errors.New("owner id is required")
	}
	return &URL{
		ShortToken:        token,
		TargetURL:         target,
		OwnerID:           ownerID,
		Campaign:          campaign,
		ExpirationSeconds: expirationSeconds,
		CreatedAt:         time.Now(),
		IsActive:          true,
	}, nil
}
