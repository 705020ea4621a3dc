package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/natachabertin/urlshortener/internal/models"
	"github.com/natachabertin/urlshortener/internal/repository"
)

// ClickMetadata carries the request attributes stored with each click.
// Every field is optional free text.
type ClickMetadata struct {
	Referer   string
	UserAgent string
	Viewport  string
}

// ResolverService runs the redirect path: resolve the token, durably record
// the click, then hand back the target. Recording is synchronous on
// purpose: a redirect must never be issued for a visit that failed to
// persist, so a storage failure here surfaces as a server error instead of
// silently losing analytics.
type ResolverService struct {
	urls   *repository.URLRepository
	cache  *repository.URLCache
	logger *slog.Logger
}

func NewResolverService(urls *repository.URLRepository, cache *repository.URLCache, logger *slog.Logger) *ResolverService {
	return &ResolverService{
		urls:   urls,
		cache:  cache,
		logger: logger,
	}
}

// ResolveAndRecord returns the target URL for an active token. Missing and
// disabled tokens are indistinguishable to the caller. If the URL is
// disabled concurrently after resolution, the click is still recorded: the
// redirect answer was already determined.
func (s *ResolverService) ResolveAndRecord(ctx context.Context, token string, meta ClickMetadata) (string, error) {
	url, cached := s.cache.Get(ctx, token)
	if !cached {
		var err error
		url, err = s.urls.FindActiveByToken(token)
		if err != nil {
			return "", err
		}
		s.cache.Set(ctx, url)
	}
	if !url.IsActive {
		// Stale cache entry for a disabled link
		s.cache.Invalidate(ctx, token)
		return "", repository.ErrNotFound
	}

	click, err := models.NewClick(url.ID, time.Now(), meta.Referer, meta.UserAgent, meta.Viewport)
	if err != nil {
		return "", err
	}
	if _, err := s.urls.RecordClick(click); err != nil {
		s.logger.Error("Click recording failed, aborting redirect", "token", token, "error", err)
		return "", fmt.Errorf("resolve %q: %w", token, err)
	}

	return url.TargetURL, nil
}

// Peek resolves a token without recording a click. Used where the link is
// inspected rather than followed, e.g. QR rendering.
func (s *ResolverService) Peek(ctx context.Context, token string) (*models.URL, error) {
	if url, cached := s.cache.Get(ctx, token); cached && url.IsActive {
		return url, nil
	}
	return s.urls.FindActiveByToken(token)
}
