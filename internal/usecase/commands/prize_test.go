//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"ruleta-server/internal/domain/prize"
	"ruleta-server/internal/infra/cache"
	"ruleta-server/internal/infra/repository"
	"ruleta-server/internal/infra/ttlstore"
	"ruleta-server/internal/pkg/clock"
	"ruleta-server/internal/pkg/errs"
	"ruleta-server/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ttl = 24 * time.Hour

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// sequenceGenerator hands out codes in order and wraps around.
type sequenceGenerator struct {
	codes []prize.Code
	next  int
}

func (g *sequenceGenerator) Generate() prize.Code {
	c := g.codes[g.next%len(g.codes)]
	g.next++
	return c
}

type fixture struct {
	cmds  commands.PrizeCommands
	repo  *repository.PrizeRepository
	cache *cache.Cache
	clock *clock.MockClock
}

func newFixture(t *testing.T, quota int) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(t0)
	store := ttlstore.New(ttlstore.NewMemoryMedium(quota), "ruleta_test_", clk, logger)
	repo := repository.NewPrizeRepository(store, "prizes", ttl, logger)
	c := cache.New(time.Minute, clk, logger)
	gen := &sequenceGenerator{codes: []prize.Code{"AAA-AA-A", "BBB-BB-B", "CCC-CC-C", "DDD-DD-D"}}
	policy, err := prize.NewPolicy(ttl)
	require.NoError(t, err)

	return &fixture{
		cmds:  commands.NewPrizeCommands(repo, c, gen, clk, policy, logger),
		repo:  repo,
		cache: c,
		clock: clk,
	}
}

func TestPrizeCommands_Issue(t *testing.T) {
	ctx := context.Background()

	t.Run("persists an active prize", func(t *testing.T) {
		f := newFixture(t, 0)

		p, err := f.cmds.Issue(ctx, "  Coffee mug ")
		require.NoError(t, err)
		assert.Equal(t, clock.Millis(t0), p.ID())
		assert.Equal(t, "Coffee mug", p.Name())
		assert.Equal(t, prize.Code("AAA-AA-A"), p.Code())
		assert.Equal(t, prize.StatusActive, p.StatusAt(f.clock.Now(), ttl))

		stored := f.repo.FindAll(ctx)
		require.Len(t, stored, 1)
		assert.Equal(t, p.ID(), stored[0].ID())
	})

	t.Run("ids stay strictly increasing within one millisecond", func(t *testing.T) {
		f := newFixture(t, 0)

		first, err := f.cmds.Issue(ctx, "Mug")
		require.NoError(t, err)
		second, err := f.cmds.Issue(ctx, "Cap")
		require.NoError(t, err)

		assert.Equal(t, first.ID()+1, second.ID())
	})

	t.Run("invalid name is rejected and nothing is stored", func(t *testing.T) {
		f := newFixture(t, 0)

		for _, name := range []string{"", "   ", strings.Repeat("x", 101)} {
			_, err := f.cmds.Issue(ctx, name)
			assert.True(t, errs.Is(err, errs.ErrInvalidPrizeName), "name %q: %v", name, err)
		}
		assert.Empty(t, f.repo.FindAll(ctx))
	})

	t.Run("storage failure surfaces as unavailable", func(t *testing.T) {
		f := newFixture(t, 16)

		_, err := f.cmds.Issue(ctx, "Mug")
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrStorageUnavailable), "got %v", err)
	})
}

type unreadableMedium struct {
	*ttlstore.MemoryMedium
}

func (unreadableMedium) Read(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection reset")
}

func TestPrizeCommands_ReadFailureSurfacesAsUnavailable(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewMockClock(t0)
	medium := unreadableMedium{MemoryMedium: ttlstore.NewMemoryMedium(0)}
	store := ttlstore.New(medium, "ruleta_test_", clk, logger)
	repo := repository.NewPrizeRepository(store, "prizes", ttl, logger)
	policy, err := prize.NewPolicy(ttl)
	require.NoError(t, err)
	cmds := commands.NewPrizeCommands(repo, cache.New(time.Minute, clk, logger),
		&sequenceGenerator{codes: []prize.Code{"AAA-AA-A"}}, clk, policy, logger)

	_, err = cmds.Issue(ctx, "Mug")
	assert.True(t, errs.Is(err, errs.ErrStorageUnavailable), "got %v", err)

	_, err = cmds.Claim(ctx, "AAA-AA-A")
	assert.True(t, errs.Is(err, errs.ErrStorageUnavailable), "got %v", err)

	_, err = cmds.Compact(ctx)
	assert.True(t, errs.Is(err, errs.ErrStorageUnavailable), "got %v", err)

	_, err = medium.MemoryMedium.Read(ctx, "ruleta_test_prizes")
	assert.ErrorIs(t, err, ttlstore.ErrEntryNotFound, "nothing was written")
}

func TestPrizeCommands_Claim(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)

	issued, err := f.cmds.Issue(ctx, "Mug")
	require.NoError(t, err)

	cases := []struct {
		name string
		code string
		want bool
	}{
		{name: "unknown code", code: "ZZZ-ZZ-Z", want: false},
		{name: "malformed code", code: "nope", want: false},
		{name: "known code", code: issued.Code().String(), want: true},
		{name: "known code in lower case", code: "aaa-aa-a", want: true},
		{name: "already claimed", code: issued.Code().String(), want: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := f.cmds.Claim(ctx, tc.code)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}

	stored := f.repo.FindAll(ctx)
	require.Len(t, stored, 1)
	assert.True(t, stored[0].Claimed())
	assert.Equal(t, prize.StatusClaimed, stored[0].StatusAt(f.clock.Now(), ttl))
}

func TestPrizeCommands_ClaimAfterExpiry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)

	issued, err := f.cmds.Issue(ctx, "Mug")
	require.NoError(t, err)

	// keep the collection entry alive while the prize itself ages out
	f.clock.Add(ttl - time.Hour)
	_, err = f.cmds.Issue(ctx, "Cap")
	require.NoError(t, err)
	f.clock.Add(2 * time.Hour)

	require.Equal(t, prize.StatusExpired, f.repo.FindAll(ctx)[0].StatusAt(f.clock.Now(), ttl))

	ok, err := f.cmds.Claim(ctx, issued.Code().String())
	require.NoError(t, err)
	assert.True(t, ok)

	stored := f.repo.FindAll(ctx)
	require.Len(t, stored, 2)
	assert.True(t, stored[0].Claimed())
	assert.Equal(t, prize.StatusClaimed, stored[0].StatusAt(f.clock.Now(), ttl))
}

func TestPrizeCommands_Compact(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)

	old, err := f.cmds.Issue(ctx, "Old claimed")
	require.NoError(t, err)
	_, err = f.cmds.Issue(ctx, "Old unclaimed")
	require.NoError(t, err)
	ok, err := f.cmds.Claim(ctx, old.Code().String())
	require.NoError(t, err)
	require.True(t, ok)

	f.clock.Add(ttl - time.Hour)
	_, err = f.cmds.Issue(ctx, "Fresh")
	require.NoError(t, err)

	t.Run("nothing expired yet", func(t *testing.T) {
		n, err := f.cmds.Compact(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, n)
		assert.Len(t, f.repo.FindAll(ctx), 3)
	})

	t.Run("removes only unclaimed expired prizes", func(t *testing.T) {
		f.clock.Add(2 * time.Hour)

		n, err := f.cmds.Compact(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)

		names := make([]string, 0, 2)
		for _, p := range f.repo.FindAll(ctx) {
			names = append(names, p.Name())
		}
		assert.ElementsMatch(t, []string{"Old claimed", "Fresh"}, names)
	})
}

func TestPrizeCommands_InvalidatesReports(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 0)

	f.cache.Set("report:stats", "stale")
	f.cache.Set("report:list:active:1:20", "stale")
	f.cache.Set("session:42", "kept")

	_, err := f.cmds.Issue(ctx, "Mug")
	require.NoError(t, err)

	assert.False(t, f.cache.Has("report:stats"))
	assert.False(t, f.cache.Has("report:list:active:1:20"))
	assert.True(t, f.cache.Has("session:42"))

	t.Run("failed claim leaves reports alone", func(t *testing.T) {
		f.cache.Set("report:stats", "fresh")

		ok, err := f.cmds.Claim(ctx, "ZZZ-ZZ-Z")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.True(t, f.cache.Has("report:stats"))
	})
}
