package currency

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores the last successfully fetched rate per currency pair.
// Implementations are best-effort: a cache failure degrades to a fetch or
// fallback, never to an error.
type Cache interface {
	Get(ctx context.Context, base, quote string) (Rate, bool)
	Put(ctx context.Context, r Rate)
}

// MemoryCache is the default in-process cache.
type MemoryCache struct {
	mu    sync.RWMutex
	rates map[string]Rate
}

// NewMemoryCache returns an empty in-process cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{rates: make(map[string]Rate)}
}

func (c *MemoryCache) Get(_ context.Context, base, quote string) (Rate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.rates[pairKey(base, quote)]
	return r, ok
}

func (c *MemoryCache) Put(_ context.Context, r Rate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rates[pairKey(r.Base, r.Quote)] = r
}

// RedisCache persists rates across process restarts. Entries carry their
// fetch timestamp, so freshness is judged by the Service, not by Redis
// expiry: the TTL only bounds how long a stale rate stays available as a
// fetch-failure fallback, and should be well beyond the freshness window.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache wraps a connected Redis client.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func redisKey(base, quote string) string {
	return "currency:rate:" + pairKey(base, quote)
}

func (c *RedisCache) Get(ctx context.Context, base, quote string) (Rate, bool) {
	data, err := c.client.Get(ctx, redisKey(base, quote)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Warning: redis rate lookup %s/%s failed: %v", base, quote, err)
		}
		return Rate{}, false
	}
	var r Rate
	if err := json.Unmarshal(data, &r); err != nil {
		log.Printf("Warning: corrupt cached rate for %s/%s: %v", base, quote, err)
		return Rate{}, false
	}
	return r, true
}

func (c *RedisCache) Put(ctx context.Context, r Rate) {
	data, err := json.Marshal(r)
	if err != nil {
		log.Printf("Warning: could not encode rate %s/%s: %v", r.Base, r.Quote, err)
		return
	}
	if err := c.client.Set(ctx, redisKey(r.Base, r.Quote), data, c.ttl).Err(); err != nil {
		log.Printf("Warning: could not cache rate %s/%s: %v", r.Base, r.Quote, err)
	}
}
