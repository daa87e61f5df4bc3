package cache

import (
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Metrics tracks cache performance.
type Metrics struct {
	Hits   int64
	Misses int64
	Sets   int64
}

// TTLCache is a typed wrapper over go-cache. Entries expire ttl after their
// last write; reads through Touch refresh that deadline.
type TTLCache[T any] struct {
	items  *cache.Cache
	ttl    time.Duration
	name   string
	logger *zap.Logger

	hits   atomic.Int64
	misses atomic.Int64
	sets   atomic.Int64
}

// NewTTLCache creates a cache whose janitor sweeps expired entries every ttl/2.
func NewTTLCache[T any](ttl time.Duration, name string, logger *zap.Logger) *TTLCache[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	cleanup := ttl / 2
	if cleanup <= 0 {
		cleanup = time.Minute
	}
	return &TTLCache[T]{
		items:  cache.New(ttl, cleanup),
		ttl:    ttl,
		name:   name,
		logger: logger,
	}
}

func (c *TTLCache[T]) Set(key string, value T) {
	c.items.SetDefault(key, value)
	c.sets.Add(1)
	c.logger.Debug("Cache set",
		zap.String("cache", c.name),
		zap.String("key", key),
		zap.Duration("ttl", c.ttl),
	)
}

func (c *TTLCache[T]) Get(key string) (T, bool) {
	v, found := c.items.Get(key)
	if !found {
		c.misses.Add(1)
		var zero T
		return zero, false
	}
	value, ok := v.(T)
	if !ok {
		c.misses.Add(1)
		var zero T
		return zero, false
	}
	c.hits.Add(1)
	return value, true
}

// Touch returns the value under key and pushes its expiry out by a full ttl.
func (c *TTLCache[T]) Touch(key string) (T, bool) {
	value, found := c.Get(key)
	if found {
		c.items.SetDefault(key, value)
	}
	return value, found
}

// GetOrCreate returns the live entry for key, storing create() when there is
// none. Concurrent callers for the same key all receive the stored value.
func (c *TTLCache[T]) GetOrCreate(key string, create func() T) T {
	if value, found := c.Touch(key); found {
		return value
	}

	value := create()
	if err := c.items.Add(key, value, cache.DefaultExpiration); err != nil {
		// Lost the race; use the winner's entry.
		if existing, found := c.Get(key); found {
			return existing
		}
		c.items.SetDefault(key, value)
	}
	c.sets.Add(1)
	return value
}

func (c *TTLCache[T]) Delete(key string) {
	c.items.Delete(key)
}

func (c *TTLCache[T]) Clear() {
	c.items.Flush()
	c.logger.Info("Cache cleared", zap.String("cache", c.name))
}

// Size counts stored entries, including expired ones the janitor has not yet removed.
func (c *TTLCache[T]) Size() int {
	return c.items.ItemCount()
}

func (c *TTLCache[T]) Metrics() Metrics {
	return Metrics{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Sets:   c.sets.Load(),
	}
}
