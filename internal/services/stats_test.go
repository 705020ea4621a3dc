package services

import (
	"testing"
	"time"

	"github.com/natachabertin/urlshortener/internal/models"
	"github.com/natachabertin/urlshortener/internal/repository"

	"github.com/stretchr/testify/assert"
)

const (
	chromeAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	iphoneAgent  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	crawlerAgent = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"
)

func TestURLStats(t *testing.T) {
	env := setupTestServices(t)
	owner := env.createUser(t, "owner@example.com")

	url, err := env.shortener.CreateShortURL(ShortenDTO{
		OwnerID:     owner.ID,
		TargetURL:   "https://example.org",
		CustomToken: "stats12",
	})
	assert.NoError(t, err)

	visits := []struct {
		agent   string
		referer string
	}{
		{chromeAgent, "https://news.example"},
		{chromeAgent, ""},
		{iphoneAgent, "https://news.example"},
		{crawlerAgent, ""},
	}
	for _, v := range visits {
		click, _ := models.NewClick(url.ID, time.Now(), v.referer, v.agent, "")
		_, err := env.urls.RecordClick(click)
		assert.NoError(t, err)
	}

	stats, err := env.stats.URLStats(url.ID)
	assert.NoError(t, err)

	assert.Equal(t, int64(4), stats.TotalClicks)
	assert.Equal(t, "stats12", stats.ShortToken)
	assert.NotNil(t, stats.LastAccessAt)

	assert.Equal(t, int64(3), stats.Devices["Desktop"]+stats.Devices["Bot"])
	assert.Equal(t, int64(1), stats.Devices["Mobile"])
	assert.Equal(t, int64(2), stats.Referrers["Direct"])
	assert.Equal(t, int64(2), stats.Referrers["https://news.example"])
	assert.Equal(t, int64(2), stats.Browsers["Chrome"])
}

func TestURLStatsUnknownURL(t *testing.T) {
	env := setupTestServices(t)
	_, err := env.stats.URLStats(12345)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStatsListClicks(t *testing.T) {
	env := setupTestServices(t)
	owner := env.createUser(t, "owner@example.com")

	url, err := env.shortener.CreateShortURL(ShortenDTO{
		OwnerID:     owner.ID,
		TargetURL:   "https://example.org",
		CustomToken: "clk1234",
	})
	assert.NoError(t, err)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		click, _ := models.NewClick(url.ID, base.Add(time.Duration(i)*time.Minute), "", "", "")
		_, err := env.urls.RecordClick(click)
		assert.NoError(t, err)
	}

	clicks, err := env.stats.ListClicks(url.ID, 1, 10)
	assert.NoError(t, err)
	assert.Len(t, clicks, 2)

	_, err = env.stats.ListClicks(4242, 0, 10)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestClassifyAgent(t *testing.T) {
	browser, device := classifyAgent("")
	assert.Equal(t, "Unknown", browser)
	assert.Equal(t, "Unknown", device)

	browser, device = classifyAgent(chromeAgent)
	assert.Equal(t, "Chrome", browser)
	assert.Equal(t, "Desktop", device)

	_, device = classifyAgent(iphoneAgent)
	assert.Equal(t, "Mobile", device)

	_, device = classifyAgent(crawlerAgent)
	assert.Equal(t, "Bot", device)
}
