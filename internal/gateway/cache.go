package gateway

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultCacheTTL bounds how long a provider response is reused.
const DefaultCacheTTL = 24 * time.Hour

// ttlCache is a process-local response cache. Entries expire by age and are
// evicted lazily on the next read, never proactively swept. There is no
// single-flight: concurrent misses on the same key each fetch upstream, which
// costs latency, not correctness. The mutex only protects the map itself.
type ttlCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time
}

type cacheEntry struct {
	payload  interface{}
	storedAt time.Time
}

func newTTLCache(ttl time.Duration) *ttlCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ttlCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *ttlCache) get(key string) (interface{}, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.payload, true
}

func (c *ttlCache) set(key string, payload interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{payload: payload, storedAt: c.now()}
}

// cacheKey builds a key from coordinates rounded to the given number of
// decimal degrees (2 ≈ 1.1 km, 3 ≈ 110 m) plus any extra discriminators such
// as travel mode or hour bucket.
func cacheKey(decimals int, coords []float64, extra ...string) string {
	parts := make([]string, 0, len(coords)+len(extra))
	for _, c := range coords {
		parts = append(parts, fmt.Sprintf("%.*f", decimals, c))
	}
	parts = append(parts, extra...)
	return strings.Join(parts, ",")
}
