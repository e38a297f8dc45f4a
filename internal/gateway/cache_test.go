package gateway

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheHit(t *testing.T) {
	c := newTTLCache(time.Hour)
	c.set("k", "payload")

	got, ok := c.get("k")
	assert.True(t, ok)
	assert.Equal(t, "payload", got)
}

func TestCacheMiss(t *testing.T) {
	c := newTTLCache(time.Hour)
	_, ok := c.get("missing")
	assert.False(t, ok)
}

func TestCacheExpiryIsLazy(t *testing.T) {
	now := time.Now()
	c := newTTLCache(time.Hour)
	c.now = func() time.Time { return now }

	c.set("k", "payload")

	// Entry still in the map but older than the TTL: treated as absent
	now = now.Add(time.Hour + time.Minute)
	_, ok := c.get("k")
	assert.False(t, ok)

	// And the read evicted it
	c.mu.Lock()
	_, present := c.entries["k"]
	c.mu.Unlock()
	assert.False(t, present)
}

func TestCacheFreshEntrySurvives(t *testing.T) {
	now := time.Now()
	c := newTTLCache(time.Hour)
	c.now = func() time.Time { return now }

	c.set("k", 42)
	now = now.Add(59 * time.Minute)

	got, ok := c.get("k")
	assert.True(t, ok)
	assert.Equal(t, 42, got)
}

func TestCacheKeyRounding(t *testing.T) {
	// 2 decimals: nearby coordinates collapse to the same key
	a := cacheKey(2, []float64{-33.86881, 151.20931})
	b := cacheKey(2, []float64{-33.87012, 151.20899})
	assert.Equal(t, a, b)

	// 3 decimals keeps them distinct
	a = cacheKey(3, []float64{-33.86881, 151.20931})
	b = cacheKey(3, []float64{-33.87012, 151.20899})
	assert.NotEqual(t, a, b)

	// Extra discriminators split otherwise-equal keys
	assert.NotEqual(t,
		cacheKey(2, []float64{-33.86, 151.20}, "auto"),
		cacheKey(2, []float64{-33.86, 151.20}, "bicycle"))
}
