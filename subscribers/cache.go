package subscribers

import (
	"sync"
	"time"
)

// CountCache caches the confirmed-subscriber count so public pages can
// show it on every render without a database hit. The count is
// best-effort; a stale value for a few minutes is fine.
type CountCache struct {
	store *Store
	ttl   time.Duration

	mu       sync.RWMutex
	count    int
	loadedAt time.Time
}

// NewCountCache wraps store with a count cache refreshed at most every
// ttl.
func NewCountCache(store *Store, ttl time.Duration) *CountCache {
	return &CountCache{store: store, ttl: ttl}
}

// Count returns the cached confirmed count, refreshing it when the TTL
// has lapsed. On a refresh error the previous value is served.
func (c *CountCache) Count() (int, error) {
	c.mu.RLock()
	if !c.loadedAt.IsZero() && time.Since(c.loadedAt) < c.ttl {
		n := c.count
		c.mu.RUnlock()
		return n, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	// another goroutine may have refreshed while we waited
	if !c.loadedAt.IsZero() && time.Since(c.loadedAt) < c.ttl {
		return c.count, nil
	}
	n, err := c.store.Count(StatusConfirmed)
	if err != nil {
		return c.count, err
	}
	c.count = n
	c.loadedAt = time.Now()
	return n, nil
}

// Invalidate drops the cached value so the next Count hits the store.
// Called after any write that changes subscriber status.
func (c *CountCache) Invalidate() {
	c.mu.Lock()
	c.loadedAt = time.Time{}
	c.mu.Unlock()
}
