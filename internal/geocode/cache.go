package geocode

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores resolved addresses in Redis. The same query against the same
// provider state yields the same formatted address, so results are safe to
// reuse for a day. A nil *Cache is valid and disables caching.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache connects to Redis via URL. An empty URL returns a nil cache, which
// every method tolerates.
func NewCache(redisURL string, ttl time.Duration) (*Cache, error) {
	if redisURL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	return &Cache{rdb: redis.NewClient(opt), ttl: ttl}, nil
}

// NewCacheWithClient wraps an existing Redis client. Used by tests (miniredis).
func NewCacheWithClient(rdb *redis.Client, ttl time.Duration) *Cache {
	return &Cache{rdb: rdb, ttl: ttl}
}

// Get returns a cached address, if any. Cache failures read as misses.
func (c *Cache) Get(ctx context.Context, key string) (Address, bool) {
	if c == nil {
		return Address{}, false
	}

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return Address{}, false
	}

	var addr Address
	if err := json.Unmarshal(raw, &addr); err != nil {
		return Address{}, false
	}
	return addr, true
}

// Set stores an address. Failures are ignored; the cache is best-effort.
func (c *Cache) Set(ctx context.Context, key string, addr Address) {
	if c == nil {
		return
	}

	raw, err := json.Marshal(addr)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

// Close releases the underlying Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
