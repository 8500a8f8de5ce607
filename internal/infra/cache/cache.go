package cache

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sync"
	"time"

	"ruleta-server/internal/infra"
	"ruleta-server/internal/pkg/clock"

	"golang.org/x/sync/singleflight"
)

// Generator computes the value for a missing key.
type Generator func(ctx context.Context) (any, error)

type entry struct {
	value     any
	createdAt time.Time
	ttl       time.Duration
}

func (e entry) expiredAt(now time.Time) bool {
	return e.ttl > 0 && now.Sub(e.createdAt) >= e.ttl
}

// flight is a running generation. stale is set under Cache.mu when the key
// is invalidated mid-flight; the result then reaches waiters but is not stored.
type flight struct {
	stale bool
}

/*
Cache memoizes derived values (statistics, listings) with a TTL per entry.

Besides plain Get/Set it offers:
  - Invalidate / InvalidatePattern / Clear for explicit invalidation
  - GetOrGenerate, which runs at most one generator per key at a time;
    concurrent callers for the same key share the in-flight result.

It is independent of the TTL store and is never persisted.
*/
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry

	// flights dedupes concurrent generations per key; inflight tracks them
	// by key so invalidation only affects the keys it matches.
	flights  singleflight.Group
	inflight map[string]*flight

	defaultTTL time.Duration
	clock      clock.Clock
	logger     *slog.Logger
	stats      counters
}

func New(defaultTTL time.Duration, clk clock.Clock, logger *slog.Logger) *Cache {
	return &Cache{
		entries:    make(map[string]entry),
		inflight:   make(map[string]*flight),
		defaultTTL: defaultTTL,
		clock:      clk,
		logger:     logger,
	}
}

func (c *Cache) DefaultTTL() time.Duration {
	return c.defaultTTL
}

// Set stores value with the default TTL.
func (c *Cache) Set(key string, value any) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores value; ttl <= 0 keeps it until invalidated.
func (c *Cache) SetWithTTL(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, createdAt: c.clock.Now(), ttl: ttl}
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	ent, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if ent.expiredAt(c.clock.Now()) {
		c.mu.Lock()
		// re-check: a concurrent Set may have replaced the expired entry
		if cur, ok := c.entries[key]; ok && cur.expiredAt(c.clock.Now()) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return ent.value, true
}

func (c *Cache) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if f, ok := c.inflight[key]; ok {
		f.stale = true
	}
	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		c.stats.invalidations.Add(1)
	}
}

// InvalidatePattern removes every key matching re and returns how many were removed.
func (c *Cache) InvalidatePattern(re *regexp.Regexp) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, f := range c.inflight {
		if re.MatchString(k) {
			f.stale = true
		}
	}

	removed := 0
	for k := range c.entries {
		if re.MatchString(k) {
			delete(c.entries, k)
			removed++
		}
	}
	c.stats.invalidations.Add(uint64(removed))
	return removed
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, f := range c.inflight {
		f.stale = true
	}
	c.stats.invalidations.Add(uint64(len(c.entries)))
	c.entries = make(map[string]entry)
}

// Len counts stored entries, including expired ones not yet evicted.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

/*
GetOrGenerate returns the live value for key, generating it on a miss.

 1. A live cached value is returned without calling generate.
 2. If a generation for key is already running, the caller waits for it and
    receives the same value or error.
 3. Otherwise generate runs once; its value is cached with ttl, its error is
    wrapped as a GENERATION StoreError, handed to every waiter and not cached.

generate runs detached from ctx cancellation. A caller whose ctx ends first
gets ctx.Err(); the generation still completes and fills the cache.
*/
func (c *Cache) GetOrGenerate(ctx context.Context, key string, generate Generator, ttl time.Duration) (any, error) {
	if v, ok := c.Get(key); ok {
		c.stats.hits.Add(1)
		return v, nil
	}
	c.stats.misses.Add(1)

	genCtx := context.WithoutCancel(ctx)
	ch := c.flights.DoChan(key, func() (any, error) {
		return c.generate(genCtx, key, generate, ttl)
	})

	select {
	case res := <-ch:
		if res.Shared {
			c.stats.shared.Add(1)
		}
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Cache) generate(ctx context.Context, key string, generate Generator, ttl time.Duration) (v any, err error) {
	// a flight that finished just before this one may already have filled the key
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	f := &flight{}
	c.mu.Lock()
	c.inflight[key] = f
	c.mu.Unlock()
	c.stats.generations.Add(1)

	defer func() {
		if r := recover(); r != nil {
			v, err = nil, infra.WrapStoreErr(c.logger, infra.KindGeneration, "generator panicked", fmt.Errorf("%v", r), slog.String("key", key))
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.inflight, key)
		if err != nil {
			return
		}
		if f.stale {
			c.logger.Debug("Discarding generation invalidated in flight", "key", key)
			return
		}
		c.entries[key] = entry{value: v, createdAt: c.clock.Now(), ttl: ttl}
	}()

	v, err = generate(ctx)
	if err != nil {
		return nil, infra.WrapStoreErr(c.logger, infra.KindGeneration, "generator failed", err, slog.String("key", key))
	}
	return v, nil
}

// GetOrGenerateAs is the typed form of GetOrGenerate. A cached value of a
// different type is treated as a miss and regenerated.
func GetOrGenerateAs[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, generate func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if v, ok := c.Get(key); ok {
		if typed, ok := v.(T); ok {
			c.stats.hits.Add(1)
			return typed, nil
		}
		c.Invalidate(key)
	}

	v, err := c.GetOrGenerate(ctx, key, func(ctx context.Context) (any, error) {
		return generate(ctx)
	}, ttl)
	if err != nil {
		return zero, err
	}
	typed, ok := v.(T)
	if !ok {
		return zero, infra.WrapStoreErr(c.logger, infra.KindGeneration, "cached value has unexpected type", nil, slog.String("key", key))
	}
	return typed, nil
}
