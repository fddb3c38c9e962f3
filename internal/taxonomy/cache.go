package taxonomy

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// cacheKey is the single Redis key the specialty tree is cached under.
const cacheKey = "onboarding:taxonomy:specialties"

// Cache is a read-through Redis cache over a Provider. The specialty
// tree changes rarely and is fetched on every onboarding turn, so one
// key with a TTL is enough. Redis errors degrade to the inner provider;
// they never fail the request.
type Cache struct {
	inner Provider
	rdb   redis.UniversalClient
	ttl   time.Duration
}

// NewCache wraps inner with a Redis cache.
func NewCache(inner Provider, rdb redis.UniversalClient, ttl time.Duration) *Cache {
	return &Cache{inner: inner, rdb: rdb, ttl: ttl}
}

func (c *Cache) Specialties(ctx context.Context) ([]Specialty, error) {
	raw, err := c.rdb.Get(ctx, cacheKey).Result()
	if err == nil {
		var specs []Specialty
		if jerr := json.Unmarshal([]byte(raw), &specs); jerr == nil {
			return specs, nil
		}
		// Corrupt entry: drop it and refill below.
		c.rdb.Del(ctx, cacheKey)
	}

	specs, err := c.inner.Specialties(ctx)
	if err != nil {
		return nil, err
	}

	if payload, jerr := json.Marshal(specs); jerr == nil {
		c.rdb.Set(ctx, cacheKey, payload, c.ttl)
	}
	return specs, nil
}

func (c *Cache) Subspecialties(ctx context.Context, specialtyTitle string) ([]string, error) {
	specs, err := c.Specialties(ctx)
	if err != nil {
		return nil, err
	}
	for _, sp := range specs {
		if strings.EqualFold(sp.Title, specialtyTitle) {
			return sp.Subspecialties, nil
		}
	}
	return nil, nil
}
