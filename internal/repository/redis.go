package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/natachabertin/urlshortener/internal/models"

	"github.com/redis/go-redis/v9"
)

const urlCacheTTL = 10 * time.Minute

func InitRedis(addr string, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()
	_, err := rdb.Ping(ctx).Result()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

// URLCache keeps token lookups off the database on the hot redirect path.
// A nil cache (redis unavailable) degrades to DB-only lookups.
type URLCache struct {
	rdb *redis.Client
}

func NewURLCache(rdb *redis.Client) *URLCache {
	if rdb == nil {
		return nil
	}
	return &URLCache{rdb: rdb}
}

func (c *URLCache) key(token string) string {
	return "url:" + token
}

func (c *URLCache) Get(ctx context.Context, token string) (*models.URL, bool) {
	if c == nil {
		return nil, false
	}
	val, err := c.rdb.Get(ctx, c.key(token)).Result()
	if err != nil {
		return nil, false
	}
	var url models.URL
	if err := json.Unmarshal([]byte(val), &url); err != nil {
		return nil, false
	}
	return &url, true
}

func (c *URLCache) Set(ctx context.Context, url *models.URL) {
	if c == nil {
		return
	}
	data, err := json.Marshal(url)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, c.key(url.ShortToken), data, urlCacheTTL)
}

// Invalidate must be called whenever a URL is disabled, otherwise a cached
// copy could keep resolving until its TTL expires.
func (c *URLCache) Invalidate(ctx context.Context, token string) {
	if c == nil {
		return
	}
	c.rdb.Del(ctx, c.key(token))
}
