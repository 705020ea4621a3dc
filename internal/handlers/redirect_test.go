package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/natachabertin/urlshortener/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRedirectToURL(t *testing.T) {
	h, db := setupTestHandler(t)
	r := setupTestRouter(h)
	owner := createTestUser(t, db, "owner@example.com", "key-1")

	t.Run("404 Not Found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/NONEXISTENT", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var count int64
		db.Model(&models.Click{}).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Successful Redirect records click", func(t *testing.T) {
		url, _ := models.NewURL("GOOGLE1", "https://google.com", owner.ID, "", nil)
		db.Create(url)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/GOOGLE1", nil)
		req.Header.Set("Referer", "https://news.example")
		req.Header.Set("User-Agent", "test-agent")
		req.Header.Set("X-Viewport", "1024x768")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "https://google.com", w.Header().Get("Location"))

		var click models.Click
		assert.NoError(t, db.Where("url_id = ?", url.ID).First(&click).Error)
		assert.Equal(t, "https://news.example", click.Referer)
		assert.Equal(t, "test-agent", click.UserAgent)
		assert.Equal(t, "1024x768", click.Viewport)
	})

	t.Run("Disabled link looks missing", func(t *testing.T) {
		url, _ := models.NewURL("DISABLD", "https://google.com", owner.ID, "", nil)
		db.Create(url)
		db.Model(url).Update("is_active", false)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/DISABLD", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)

		var count int64
		db.Model(&models.Click{}).Where("url_id = ?", url.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})
}

func TestLinkQRCode(t *testing.T) {
	h, db := setupTestHandler(t)
	r := setupTestRouter(h)
	owner := createTestUser(t, db, "owner@example.com", "key-1")

	url, _ := models.NewURL("QRTOKEN", "https://example.org", owner.ID, "", nil)
	db.Create(url)

	t.Run("active link renders PNG", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/QRTOKEN/qr", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Greater(t, w.Body.Len(), 4)
	})

	t.Run("QR render is not a visit", func(t *testing.T) {
		var count int64
		db.Model(&models.Click{}).Where("url_id = ?", url.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("missing link 404s", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/NOQRHERE/qr", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
