//go:build unit

package prize_test

import (
	"strings"
	"testing"
	"time"

	"ruleta-server/internal/domain/prize"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ttl = 24 * time.Hour

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewPrize(t *testing.T) {
	t.Run("success: trims name and starts active", func(t *testing.T) {
		p, err := prize.NewPrize(1, "  Free pizza  ", "AB1-C2-D", t0)
		require.NoError(t, err)

		assert.Equal(t, "Free pizza", p.Name())
		assert.False(t, p.Claimed())
		assert.Equal(t, prize.StatusActive, p.StatusAt(t0, ttl))
	})

	cases := []struct {
		name  string
		pname string
		code  prize.Code
		errIs error
	}{
		{name: "empty name NG", pname: "   ", code: "AB1-C2-D", errIs: prize.ErrInvalidName},
		{name: "101 chars NG", pname: strings.Repeat("a", 101), code: "AB1-C2-D", errIs: prize.ErrInvalidName},
		{name: "malformed code NG", pname: "Mug", code: "AB1C2D", errIs: prize.ErrInvalidCode},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p, err := prize.NewPrize(1, c.pname, c.code, t0)
			require.Nil(t, p)
			require.ErrorIs(t, err, c.errIs)
		})
	}
}

func TestPrize_StateMachine(t *testing.T) {
	testCases := []struct {
		name      string
		age       time.Duration
		claimed   bool
		expStatus prize.Status
		expValid  bool
	}{
		{name: "fresh prize is active", age: 0, expStatus: prize.StatusActive, expValid: true},
		{name: "1h old unclaimed is active", age: time.Hour, expStatus: prize.StatusActive, expValid: true},
		{name: "exactly ttl old is expired", age: ttl, expStatus: prize.StatusExpired, expValid: false},
		{name: "25h old unclaimed is expired", age: 25 * time.Hour, expStatus: prize.StatusExpired, expValid: false},
		{name: "claimed young prize is claimed", age: time.Hour, claimed: true, expStatus: prize.StatusClaimed, expValid: false},
		{name: "claimed old prize stays claimed", age: 48 * time.Hour, claimed: true, expStatus: prize.StatusClaimed, expValid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := prize.ReconstructPrize(1, "Mug", "AB1-C2-D", t0, tc.claimed)
			now := t0.Add(tc.age)

			assert.Equal(t, tc.expStatus, p.StatusAt(now, ttl))
			assert.Equal(t, tc.expValid, p.IsValidAt(now, ttl))
			assert.Equal(t, tc.expStatus == prize.StatusExpired, p.IsCompactableAt(now, ttl))
		})
	}
}

func TestPrize_Claim(t *testing.T) {
	p := prize.ReconstructPrize(1, "Mug", "AB1-C2-D", t0, false)

	p.Claim()
	p.Claim()

	assert.True(t, p.Claimed())
	assert.Equal(t, prize.StatusClaimed, p.StatusAt(t0.Add(2*time.Hour), ttl))
}

func TestPrize_TimeToExpiryAt(t *testing.T) {
	p := prize.ReconstructPrize(1, "Mug", "AB1-C2-D", t0, false)

	remaining, ok := p.TimeToExpiryAt(t0.Add(time.Hour), ttl)
	require.True(t, ok)
	assert.Equal(t, 23*time.Hour, remaining)

	_, ok = p.TimeToExpiryAt(t0.Add(ttl), ttl)
	assert.False(t, ok)
}

func TestPrize_UniqueCode(t *testing.T) {
	p := prize.ReconstructPrize(7, "Mug", "AB1-C2-D", t0, true)

	expected := prize.UniqueCode{
		Code:      "AB1-C2-D",
		PrizeID:   7,
		CreatedAt: t0,
		ExpiresAt: t0.Add(ttl),
		IsUsed:    true,
	}
	if diff := cmp.Diff(expected, p.UniqueCode(ttl)); diff != "" {
		t.Errorf("UniqueCode mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, p.UniqueCode(ttl).IsExpiredAt(t0.Add(time.Hour)))
	assert.True(t, p.UniqueCode(ttl).IsExpiredAt(t0.Add(ttl)))
}

func TestPartition(t *testing.T) {
	now := t0.Add(30 * time.Hour)
	active := prize.ReconstructPrize(1, "A", "AAA-AA-A", t0.Add(10*time.Hour), false)
	claimed := prize.ReconstructPrize(2, "B", "BBB-BB-B", t0, true)
	expired := prize.ReconstructPrize(3, "C", "CCC-CC-C", t0, false)

	a, c, e := prize.Partition([]*prize.Prize{active, claimed, expired}, now, ttl)

	assert.Equal(t, []*prize.Prize{active}, a)
	assert.Equal(t, []*prize.Prize{claimed}, c)
	assert.Equal(t, []*prize.Prize{expired}, e)
	assert.Same(t, claimed, prize.FindByCode([]*prize.Prize{active, claimed, expired}, "BBB-BB-B"))
	assert.Nil(t, prize.FindByCode([]*prize.Prize{active}, "ZZZ-ZZ-Z"))
}
