package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// PageCachePrefix is the key prefix for cached whole responses
	PageCachePrefix = "page:"
)

// CachedPage is a serialized HTTP response stored for a route+query key.
type CachedPage struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// PageCache is a coarse whole-response cache keyed by route+query with a
// fixed time-to-live and no invalidation hook. Writes elsewhere in the
// system do not evict entries; staleness is bounded purely by the TTL
// configured at construction. Using an interface enables testing with
// fakes and potential future backends.
type PageCache interface {
	// Get returns the cached response for the key, or found=false on a miss.
	Get(ctx context.Context, key string) (page *CachedPage, found bool, err error)

	// Set stores a response under the key for the configured TTL.
	Set(ctx context.Context, key string, page *CachedPage) error
}

// RedisPageCache implements PageCache on a Redis string value per key.
type RedisPageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a PageCache with the given TTL.
func NewPageCache(client *redis.Client, ttl time.Duration) PageCache {
	return &RedisPageCache{client: client, ttl: ttl}
}

// Key builds the cache key for a request path and raw query.
func Key(path, rawQuery string) string {
	if rawQuery == "" {
		return PageCachePrefix + path
	}
	return PageCachePrefix + path + "?" + rawQuery
}

func (c *RedisPageCache) Get(ctx context.Context, key string) (*CachedPage, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		log.Printf("[PageCache] Get FAILED: key=%s err=%v", key, err)
		return nil, false, fmt.Errorf("get cached page: %w", err)
	}

	var page CachedPage
	if err := json.Unmarshal(raw, &page); err != nil {
		// A corrupt entry behaves like a miss; it will be overwritten.
		log.Printf("[PageCache] Get decode error: key=%s err=%v", key, err)
		return nil, false, nil
	}

	return &page, true, nil
}

func (c *RedisPageCache) Set(ctx context.Context, key string, page *CachedPage) error {
	raw, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("encode cached page: %w", err)
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("[PageCache] Set FAILED: key=%s err=%v", key, err)
		return fmt.Errorf("set cached page: %w", err)
	}

	log.Printf("[PageCache] Set OK: key=%s ttl=%v bytes=%d", key, c.ttl, len(raw))
	return nil
}
