// Package cache implements the in-memory TTL query cache that sits in
// front of repository reads. Lookups are the sole expiry mechanism;
// there is no background sweep. Cache operations never return errors;
// a cache problem degrades to a miss, never blocks a read or write.
package cache

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Cache is a keyed TTL cache. Values are opaque query results; the
// whole cache is cleared after every successful write, so staleness is
// bounded by the TTL and the write rate.
type Cache struct {
	mu         sync.RWMutex
	items      map[string]item
	defaultTTL time.Duration
	now        func() time.Time
	logger     *zap.Logger
}

type item struct {
	data   any
	expiry time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock overrides the time source. Used by tests to make expiry
// deterministic.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// WithLogger sets the logger for cache events.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Cache) { c.logger = logger }
}

// New creates a Cache with the given default TTL.
func New(defaultTTL time.Duration, opts ...Option) *Cache {
	c := &Cache{
		items:      make(map[string]item),
		defaultTTL: defaultTTL,
		now:        time.Now,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value for key if it has not expired. An
// expired entry is evicted and reported as a miss.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if c.now().After(it.expiry) {
		c.mu.Lock()
		// Re-check under the write lock; a concurrent Set may have
		// refreshed the entry.
		if cur, ok := c.items[key]; ok && c.now().After(cur.expiry) {
			delete(c.items, key)
			c.logger.Debug("cache entry expired", zap.String("key", key))
		}
		c.mu.Unlock()
		return nil, false
	}
	return it.data, true
}

// Set stores data under key with the default TTL.
func (c *Cache) Set(key string, data any) {
	c.SetTTL(key, data, c.defaultTTL)
}

// SetTTL stores data under key with an explicit TTL.
func (c *Cache) SetTTL(key string, data any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = item{data: data, expiry: c.now().Add(ttl)}
}

// Delete evicts a single key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear evicts every entry. Called after every successful write to any
// collection: coarse-grained invalidation trades precision for
// correctness.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) > 0 {
		c.logger.Debug("cache cleared", zap.Int("evicted", len(c.items)))
	}
	c.items = make(map[string]item)
}

// Len returns the number of entries currently held, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
