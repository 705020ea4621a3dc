package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/natachabertin/urlshortener/internal/models"

	"gorm.io/gorm"
)

// URLRepository owns persistence for shortened URLs and their click events.
// Short tokens are globally unique: a token stays reserved even after its
// URL is disabled, so old links can never be captured by a new owner.
type URLRepository struct {
	db *gorm.DB
}

func NewURLRepository(db *gorm.DB) *URLRepository {
	return &URLRepository{db: db}
}

// FindActiveByToken returns the unique active record for a token. Disabled
// and missing tokens are both ErrNotFound.
func (r *URLRepository) FindActiveByToken(token string) (*models.URL, error) {
	var url models.URL
	err := r.db.Where("short_token = ? AND is_active = ?", token, true).First(&url).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find url by token: %w", err)
	}
	return &url, nil
}

func (r *URLRepository) FindByID(id uint) (*models.URL, error) {
	var url models.URL
	err := r.db.First(&url, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find url by id: %w", err)
	}
	return &url, nil
}

// Insert persists a new URL. A duplicate-key violation at insert time is
// the authoritative collision signal (a prior existence check can always
// lose a race) and comes back as ErrConflict.
func (r *URLRepository) Insert(url *models.URL) error {
	err := r.db.Create(url).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrConflict
	}
	if err != nil {
		return fmt.Errorf("insert url: %w", err)
	}
	return nil
}

// TokenExists reports whether a token is taken by any record, active or not.
func (r *URLRepository) TokenExists(token string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.URL{}).Where("short_token = ?", token).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count token: %w", err)
	}
	return count > 0, nil
}

// Disable marks a URL inactive and stamps deleted_at. Disabling an already
// disabled URL is a no-op success that re-stamps deleted_at; only a missing
// id is an error.
func (r *URLRepository) Disable(id uint) (*models.URL, error) {
	var url models.URL
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&url, id).Error; err != nil {
			return err
		}
		now := time.Now()
		updates := map[string]interface{}{"is_active": false, "deleted_at": now}
		if err := tx.Model(&url).Updates(updates).Error; err != nil {
			return err
		}
		url.IsActive = false
		url.DeletedAt = &now
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("disable url: %w", err)
	}
	return &url, nil
}

// RecordClick appends a click event and stamps the URL's last_access_at in
// the same transaction. It deliberately does not check is_active: the
// resolution flow already did, and click history may be recorded for
// disabled links by analytics callers.
func (r *URLRepository) RecordClick(click *models.Click) (*models.Click, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(click).Error; err != nil {
			return err
		}
		return tx.Model(&models.URL{}).
			Where("id = ?", click.URLID).
			Update("last_access_at", click.VisitedAt).Error
	})
	if err != nil {
		return nil, fmt.Errorf("record click: %w", err)
	}
	return click, nil
}

// ListActive returns active URLs ordered by creation time then id, so
// pagination is reproducible.
func (r *URLRepository) ListActive(offset, limit int) ([]models.URL, error) {
	var urls []models.URL
	err := r.db.Where("is_active = ?", true).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&urls).Error
	if err != nil {
		return nil, fmt.Errorf("list active urls: %w", err)
	}
	return urls, nil
}

func (r *URLRepository) ListByOwner(ownerID uint, offset, limit int) ([]models.URL, error) {
	var urls []models.URL
	err := r.db.Where("owner_id = ? AND is_active = ?", ownerID, true).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&urls).Error
	if err != nil {
		return nil, fmt.Errorf("list urls by owner: %w", err)
	}
	return urls, nil
}

func (r *URLRepository) ListClicks(urlID uint, offset, limit int) ([]models.Click, error) {
	var clicks []models.Click
	err := r.db.Where("url_id = ?", urlID).
		Order("visited_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&clicks).Error
	if err != nil {
		return nil, fmt.Errorf("list clicks: %w", err)
	}
	return clicks, nil
}

func (r *URLRepository) CountClicks(urlID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Click{}).Where("url_id = ?", urlID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count clicks: %w", err)
	}
	return count, nil
}
