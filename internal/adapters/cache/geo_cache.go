package cache

import (
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"
)

const defaultGeoTTL = time.Hour

// RistrettoGeoCache remembers IP -> country code lookups for a limited time.
type RistrettoGeoCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewGeoCache(maxItems int64, ttl time.Duration) (*RistrettoGeoCache, error) {
	if maxItems <= 0 {
		maxItems = 10_000
	}
	if ttl <= 0 {
		ttl = defaultGeoTTL
	}
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create geolocation cache failed: %w", err)
	}
	return &RistrettoGeoCache{cache: c, ttl: ttl}, nil
}

func (c *RistrettoGeoCache) Get(ip string) (string, bool) {
	if v, ok := c.cache.Get(ip); ok {
		code, ok := v.(string)
		return code, ok
	}
	return "", false
}

func (c *RistrettoGeoCache) Set(ip string, countryCode string) {
	c.cache.SetWithTTL(ip, countryCode, 1, c.ttl)
}

func (c *RistrettoGeoCache) Close() { c.cache.Close() }
