package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/natachabertin/urlshortener/internal/models"
	"github.com/natachabertin/urlshortener/internal/repository"
	"github.com/natachabertin/urlshortener/pkg/utils"
)

// maxTokenAttempts bounds the collision-retry loop. Not expected to trigger
// with 42 bits of entropy; purely a defensive stop.
const maxTokenAttempts = 5

type ShortenDTO struct {
	OwnerID           uint
	TargetURL         string
	CustomToken       string
	Campaign          string
	ExpirationSeconds *int
	IPAddress         string // for the audit trail
}

type ShortenerService struct {
	urls           *repository.URLRepository
	cache          *repository.URLCache
	auditService   *AuditService
	logger         *slog.Logger
	tokenGenerator func(int) string
}

func NewShortenerService(urls *repository.URLRepository, cache *repository.URLCache, auditService *AuditService, logger *slog.Logger) *ShortenerService {
	return &ShortenerService{
		urls:           urls,
		cache:          cache,
		auditService:   auditService,
		logger:         logger,
		tokenGenerator: utils.GenerateShortToken,
	}
}

// CreateShortURL persists a new mapping. With a custom token any existing
// record, active or disabled, makes it a conflict. Without one, tokens are
// generated and retried until the insert sticks; the unique index is the
// arbiter, the pre-check only saves a doomed insert.
func (s *ShortenerService) CreateShortURL(dto ShortenDTO) (*models.URL, error) {
	if dto.CustomToken != "" {
		url, err := models.NewURL(dto.CustomToken, dto.TargetURL, dto.OwnerID, dto.Campaign, dto.ExpirationSeconds)
		if err != nil {
			return nil, err
		}
		if err := s.urls.Insert(url); err != nil {
			return nil, err
		}
		s.logCreate(url, dto.IPAddress)
		return url, nil
	}

	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		token := s.tokenGenerator(utils.TokenLength)

		exists, err := s.urls.TokenExists(token)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		url, err := models.NewURL(token, dto.TargetURL, dto.OwnerID, dto.Campaign, dto.ExpirationSeconds)
		if err != nil {
			return nil, err
		}

		err = s.urls.Insert(url)
		if errors.Is(err, repository.ErrConflict) {
			// Lost the insert race to a concurrent request, regenerate.
			continue
		}
		if err != nil {
			return nil, err
		}

		s.logCreate(url, dto.IPAddress)
		return url, nil
	}

	s.logger.Error("Token generation collided on every attempt", "attempts", maxTokenAttempts)
	return nil, ErrTokenExhausted
}

// DisableURL turns a mapping off for the requesting owner. A URL owned by
// someone else reports not-found, the same as a missing id, so ids cannot
// be probed across accounts.
func (s *ShortenerService) DisableURL(ctx context.Context, id, requestingUserID uint, ip string) (*models.URL, error) {
	url, err := s.urls.FindByID(id)
	if err != nil {
		return nil, err
	}
	if url.OwnerID != requestingUserID {
		return nil, repository.ErrNotFound
	}

	disabled, err := s.urls.Disable(id)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, disabled.ShortToken)

	s.auditService.LogAction(&requestingUserID, "DISABLE_LINK", disabled.ShortToken, nil, ip)
	return disabled, nil
}

func (s *ShortenerService) ListActive(offset, limit int) ([]models.URL, error) {
	return s.urls.ListActive(offset, limit)
}

func (s *ShortenerService) GetURL(id uint) (*models.URL, error) {
	return s.urls.FindByID(id)
}

func (s *ShortenerService) logCreate(url *models.URL, ip string) {
	s.auditService.LogAction(&url.OwnerID, "CREATE_LINK", url.ShortToken, map[string]interface{}{
		"target_url": url.TargetURL,
	}, ip)
	s.logger.Info("Short URL created", "token", url.ShortToken, "owner", url.OwnerID)
}

// ShortURLFor renders the public address for a token.
func ShortURLFor(baseURL, token string) string {
	return fmt.Sprintf("%s/%s", baseURL, token)
}
