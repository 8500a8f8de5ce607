//go:build unit

package cache_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"ruleta-server/internal/infra"
	"ruleta-server/internal/infra/cache"
	"ruleta-server/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestCache(t *testing.T) (*cache.Cache, *clock.MockClock) {
	t.Helper()
	clk := clock.NewMockClock(t0)
	return cache.New(time.Minute, clk, slog.New(slog.NewTextHandler(io.Discard, nil))), clk
}

// blockingGenerator counts invocations and holds every call until release is closed.
type blockingGenerator struct {
	calls   atomic.Int32
	release chan struct{}
	value   any
	err     error
}

func newBlockingGenerator(value any, err error) *blockingGenerator {
	return &blockingGenerator{release: make(chan struct{}), value: value, err: err}
}

func (g *blockingGenerator) generate(_ context.Context) (any, error) {
	g.calls.Add(1)
	<-g.release
	return g.value, g.err
}

func TestCache_SetGetHas(t *testing.T) {
	c, clk := newTestCache(t)

	c.Set("default", 1)
	c.SetWithTTL("short", 2, time.Second)
	c.SetWithTTL("forever", 3, 0)

	v, ok := c.Get("default")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	assert.True(t, c.Has("short"))
	assert.False(t, c.Has("missing"))

	clk.Add(time.Second)
	assert.False(t, c.Has("short"))
	assert.True(t, c.Has("default"))

	clk.Add(time.Minute)
	assert.False(t, c.Has("default"))
	assert.True(t, c.Has("forever"))
	assert.Equal(t, 1, c.Len(), "expired entries are evicted on read")
}

func TestCache_Invalidate(t *testing.T) {
	c, _ := newTestCache(t)

	c.SetWithTTL("k", "v", time.Hour)
	c.Invalidate("k")
	c.Invalidate("never-set")

	assert.False(t, c.Has("k"))
}

func TestCache_InvalidatePattern(t *testing.T) {
	c, _ := newTestCache(t)

	c.Set("list_a", "v")
	c.Set("list_b", "v")
	c.Set("other", "v")

	removed := c.InvalidatePattern(regexp.MustCompile("^list_"))

	assert.Equal(t, 2, removed)
	assert.False(t, c.Has("list_a"))
	assert.False(t, c.Has("list_b"))
	assert.True(t, c.Has("other"))
}

func TestCache_Clear(t *testing.T) {
	c, _ := newTestCache(t)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, uint64(2), c.Stats().Invalidations)
}

func TestCache_GetOrGenerate_HitSkipsGenerator(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)
	c.Set("k", "cached")

	v, err := c.GetOrGenerate(ctx, "k", func(context.Context) (any, error) {
		t.Fatal("generator must not run on a hit")
		return nil, nil
	}, time.Minute)

	require.NoError(t, err)
	assert.Equal(t, "cached", v)
}

func TestCache_GetOrGenerate_SingleFlight(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)
	gen := newBlockingGenerator("stats", nil)

	const callers = 10
	var wg sync.WaitGroup
	results := make([]any, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.GetOrGenerate(ctx, "stats", gen.generate, time.Minute)
		}(i)
	}

	require.Eventually(t, func() bool {
		return c.Stats().Misses == callers
	}, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	close(gen.release)
	wg.Wait()

	assert.Equal(t, int32(1), gen.calls.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "stats", results[i])
	}

	v, ok := c.Get("stats")
	require.True(t, ok)
	assert.Equal(t, "stats", v)
}

func TestCache_GetOrGenerate_ErrorReachesEveryWaiterAndIsNotCached(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)
	boom := errors.New("backend down")
	gen := newBlockingGenerator(nil, boom)

	const callers = 5
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.GetOrGenerate(ctx, "k", gen.generate, time.Minute)
		}(i)
	}

	require.Eventually(t, func() bool {
		return c.Stats().Misses == callers
	}, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	close(gen.release)
	wg.Wait()

	assert.Equal(t, int32(1), gen.calls.Load())
	for _, err := range errs {
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
		assert.True(t, infra.IsKind(err, infra.KindGeneration))
	}
	assert.False(t, c.Has("k"))

	v, err := c.GetOrGenerate(ctx, "k", func(context.Context) (any, error) {
		return "recovered", nil
	}, time.Minute)
	require.NoError(t, err, "a failed generation is retried by the next caller")
	assert.Equal(t, "recovered", v)
}

func TestCache_GetOrGenerate_AbandonedCallerDoesNotStopGeneration(t *testing.T) {
	c, _ := newTestCache(t)
	gen := newBlockingGenerator("late", nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := c.GetOrGenerate(ctx, "k", gen.generate, time.Minute)
		done <- err
	}()

	require.Eventually(t, func() bool { return gen.calls.Load() == 1 }, time.Second, time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)

	close(gen.release)
	assert.Eventually(t, func() bool { return c.Has("k") }, time.Second, time.Millisecond)
}

func TestCache_GetOrGenerate_InvalidationDuringFlight(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)
	gen := newBlockingGenerator("stale", nil)

	done := make(chan any, 1)
	go func() {
		v, _ := c.GetOrGenerate(ctx, "report:stats", gen.generate, time.Minute)
		done <- v
	}()

	require.Eventually(t, func() bool { return gen.calls.Load() == 1 }, time.Second, time.Millisecond)
	c.InvalidatePattern(regexp.MustCompile("^report:"))
	close(gen.release)

	assert.Equal(t, "stale", <-done, "waiters still receive the result")
	assert.False(t, c.Has("report:stats"), "a pre-invalidation result is not cached")
}

func TestCache_GetOrGenerate_UnrelatedInvalidationKeepsFlight(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name       string
		invalidate func(c *cache.Cache)
	}{
		{name: "pattern on other keys", invalidate: func(c *cache.Cache) { c.InvalidatePattern(regexp.MustCompile("^session:")) }},
		{name: "single other key", invalidate: func(c *cache.Cache) { c.Invalidate("report:list:active:1:20") }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestCache(t)
			c.Set("session:abc", "s")
			gen := newBlockingGenerator("fresh", nil)

			done := make(chan any, 1)
			go func() {
				v, _ := c.GetOrGenerate(ctx, "report:stats", gen.generate, time.Minute)
				done <- v
			}()

			require.Eventually(t, func() bool { return gen.calls.Load() == 1 }, time.Second, time.Millisecond)
			tc.invalidate(c)
			close(gen.release)

			assert.Equal(t, "fresh", <-done)
			assert.True(t, c.Has("report:stats"), "a flight the invalidation did not match is cached")
			assert.Equal(t, uint64(1), c.Stats().Generations)
		})
	}
}

func TestCache_GetOrGenerate_ClearDuringFlight(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)
	gen := newBlockingGenerator("stale", nil)

	done := make(chan any, 1)
	go func() {
		v, _ := c.GetOrGenerate(ctx, "report:stats", gen.generate, time.Minute)
		done <- v
	}()

	require.Eventually(t, func() bool { return gen.calls.Load() == 1 }, time.Second, time.Millisecond)
	c.Clear()
	close(gen.release)

	assert.Equal(t, "stale", <-done)
	assert.False(t, c.Has("report:stats"))

	v, err := c.GetOrGenerate(ctx, "report:stats", func(context.Context) (any, error) { return "next", nil }, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "next", v)
	assert.True(t, c.Has("report:stats"), "later flights for the key are cached again")
}

func TestCache_GetOrGenerate_ExpiredEntryRegenerates(t *testing.T) {
	ctx := context.Background()
	c, clk := newTestCache(t)
	calls := 0
	gen := func(context.Context) (any, error) {
		calls++
		return calls, nil
	}

	v, err := c.GetOrGenerate(ctx, "k", gen, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = c.GetOrGenerate(ctx, "k", gen, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	clk.Add(time.Second)
	v, err = c.GetOrGenerate(ctx, "k", gen, time.Second)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestCache_GetOrGenerate_PanicBecomesError(t *testing.T) {
	c, _ := newTestCache(t)

	_, err := c.GetOrGenerate(context.Background(), "k", func(context.Context) (any, error) {
		panic("kaboom")
	}, time.Minute)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindGeneration))
	assert.False(t, c.Has("k"))
}

func TestGetOrGenerateAs(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)

	type page struct{ Items []string }

	got, err := cache.GetOrGenerateAs(ctx, c, "page", time.Minute, func(context.Context) (page, error) {
		return page{Items: []string{"a"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, page{Items: []string{"a"}}, got)

	c.Set("page", "not a page")
	got, err = cache.GetOrGenerateAs(ctx, c, "page", time.Minute, func(context.Context) (page, error) {
		return page{Items: []string{"b"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, page{Items: []string{"b"}}, got, "a value of another type is regenerated")
}

func TestCache_Stats(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCache(t)
	gen := func(context.Context) (any, error) { return 1, nil }

	_, _ = c.GetOrGenerate(ctx, "k", gen, time.Minute)
	_, _ = c.GetOrGenerate(ctx, "k", gen, time.Minute)

	stats := c.Stats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(1), stats.Generations)
}
