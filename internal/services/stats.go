package services

import (
	"log/slog"
	"time"

	"github.com/natachabertin/urlshortener/internal/models"
	"github.com/natachabertin/urlshortener/internal/repository"

	"github.com/mssola/user_agent"
)

// URLStats summarizes the recorded clicks for one shortened URL.
type URLStats struct {
	URLID        uint             `json:"url_id"`
	ShortToken   string           `json:"short_token"`
	TotalClicks  int64            `json:"total_clicks"`
	LastAccessAt *time.Time       `json:"last_access_at,omitempty"`
	Browsers     map[string]int64 `json:"browsers"`
	Devices      map[string]int64 `json:"devices"`
	Referrers    map[string]int64 `json:"referrers"`
}

type StatsService struct {
	urls   *repository.URLRepository
	logger *slog.Logger
}

func NewStatsService(urls *repository.URLRepository, logger *slog.Logger) *StatsService {
	return &StatsService{urls: urls, logger: logger}
}

// statsSampleLimit caps how many clicks feed the breakdown maps. Totals
// always come from a count query.
const statsSampleLimit = 10_000

// URLStats aggregates click history. Works for disabled URLs too, click
// history outlives the link.
func (s *StatsService) URLStats(urlID uint) (*URLStats, error) {
	url, err := s.urls.FindByID(urlID)
	if err != nil {
		return nil, err
	}

	total, err := s.urls.CountClicks(urlID)
	if err != nil {
		return nil, err
	}

	clicks, err := s.urls.ListClicks(urlID, 0, statsSampleLimit)
	if err != nil {
		return nil, err
	}

	stats := &URLStats{
		URLID:        url.ID,
		ShortToken:   url.ShortToken,
		TotalClicks:  total,
		LastAccessAt: url.LastAccessAt,
		Browsers:     make(map[string]int64),
		Devices:      make(map[string]int64),
		Referrers:    make(map[string]int64),
	}
	for _, click := range clicks {
		browser, device := classifyAgent(click.UserAgent)
		stats.Browsers[browser]++
		stats.Devices[device]++
		stats.Referrers[referrerLabel(click.Referer)]++
	}
	return stats, nil
}

func (s *StatsService) ListClicks(urlID uint, offset, limit int) ([]models.Click, error) {
	if _, err := s.urls.FindByID(urlID); err != nil {
		return nil, err
	}
	return s.urls.ListClicks(urlID, offset, limit)
}

func classifyAgent(rawAgent string) (browser, device string) {
	if rawAgent == "" {
		return "Unknown", "Unknown"
	}

	ua := user_agent.New(rawAgent)
	name, _ := ua.Browser()
	if name == "" {
		name = "Unknown"
	}

	switch {
	case ua.Bot():
		device = "Bot"
	case ua.Mobile():
		device = "Mobile"
	default:
		device = "Desktop"
	}
	return name, device
}

func referrerLabel(referer string) string {
	if referer == "" {
		return "Direct"
	}
	return referer
}
