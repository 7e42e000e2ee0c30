package collector

import (
	"fmt"
	"sync"
	"time"

	"github.com/Nwuebsisj/nexus-ultra-pro/internal/model"
)

// cacheEntry holds one memoized result with its expiry.
type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

// CachedFetcher wraps a Fetcher with keyed time-boxed memoization.
// Repeated calls with identical arguments within the TTL return the
// cached result instead of re-querying the provider. Entries expire by
// time only; there is no eviction policy.
type CachedFetcher struct {
	inner       Fetcher
	priceTTL    time.Duration
	strengthTTL time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
	now     func() time.Time
}

// NewCachedFetcher wraps a Fetcher with the given memoization windows
// for candle data and daily-close data.
func NewCachedFetcher(inner Fetcher, priceTTL, strengthTTL time.Duration) *CachedFetcher {
	return &CachedFetcher{
		inner:       inner,
		priceTTL:    priceTTL,
		strengthTTL: strengthTTL,
		entries:     make(map[string]cacheEntry),
		now:         time.Now,
	}
}

func (c *CachedFetcher) Name() string { return c.inner.Name() }

// lookup returns the cached value for key, or calls fill and caches the
// result for ttl. Errors are never cached.
func (c *CachedFetcher) lookup(key string, ttl time.Duration, fill func() (interface{}, error)) (interface{}, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	v, err := fill()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{value: v, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()
	return v, nil
}

func (c *CachedFetcher) FetchCandles(symbol, interval string, lookbackDays int) ([]model.Candle, error) {
	key := fmt.Sprintf("candles|%s|%s|%d", symbol, interval, lookbackDays)
	v, err := c.lookup(key, c.priceTTL, func() (interface{}, error) {
		return c.inner.FetchCandles(symbol, interval, lookbackDays)
	})
	if err != nil {
		return nil, err
	}
	return v.([]model.Candle), nil
}

func (c *CachedFetcher) FetchDailyCloses(symbol string, days int) ([]float64, error) {
	key := fmt.Sprintf("closes|%s|%d", symbol, days)
	v, err := c.lookup(key, c.strengthTTL, func() (interface{}, error) {
		return c.inner.FetchDailyCloses(symbol, days)
	})
	if err != nil {
		return nil, err
	}
	return v.([]float64), nil
}
