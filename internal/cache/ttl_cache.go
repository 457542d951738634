// Package cache provides thread-safe caching utilities with time-based expiration.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// TTLCache is a thread-safe cache whose entries expire individually, ttl
// after they were stored.
type TTLCache[K comparable, V any] struct {
	mu    sync.RWMutex
	data  map[K]entry[V]
	ttl   time.Duration
	now   func() time.Time
	group singleflight.Group
}

type entry[V any] struct {
	value  V
	stored time.Time
}

// New creates a new TTLCache with the given TTL duration. A non-positive TTL
// disables caching: every Get misses.
func New[K comparable, V any](ttl time.Duration) *TTLCache[K, V] {
	return &TTLCache[K, V]{
		data: make(map[K]entry[V]),
		ttl:  ttl,
		now:  time.Now,
	}
}

// TTL returns the lifetime of an entry.
func (c *TTLCache[K, V]) TTL() time.Duration {
	return c.ttl
}

// Get retrieves a value from the cache.
// Returns the value and ok=true if the key exists and has not expired.
func (c *TTLCache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.data[key]
	if !ok || c.expiredLocked(e) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores a value in the cache, starting its TTL now.
func (c *TTLCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.data == nil {
		c.data = make(map[K]entry[V])
	}
	c.data[key] = entry[V]{value: value, stored: c.now()}
}

// GetOrLoad returns the cached value for key, or calls load to produce and
// store it. Concurrent misses on the same key share one load. Errors are
// returned to every waiter and are not cached.
func (c *TTLCache[K, V]) GetOrLoad(ctx context.Context, key K, load func(context.Context) (V, error)) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	res, err, _ := c.group.Do(fmt.Sprint(key), func() (any, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := load(ctx)
		if err != nil {
			return v, err
		}
		c.Set(key, v)
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

// Delete removes key from the cache.
func (c *TTLCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}

// Purge removes expired entries and returns how many were removed.
func (c *TTLCache[K, V]) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for k, e := range c.data {
		if c.expiredLocked(e) {
			delete(c.data, k)
			removed++
		}
	}
	return removed
}

// expiredLocked reports whether e has outlived the TTL.
// MUST be called with at least a read lock held.
func (c *TTLCache[K, V]) expiredLocked(e entry[V]) bool {
	return c.ttl <= 0 || c.now().Sub(e.stored) >= c.ttl
}

// Invalidate clears all cached data.
func (c *TTLCache[K, V]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data = make(map[K]entry[V])
}

// Len returns the number of items currently in the cache.
// This does not check expiration - it returns the count even if expired.
func (c *TTLCache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
