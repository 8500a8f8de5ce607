package prize

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var ErrInvalidName = errors.New("prize name must be between 1 and 100 characters")

const maxNameLength = 100

// Prize is issued with exactly one code. claimed only ever goes false -> true;
// the expired state is never stored and is derived from createdAt on every query.
type Prize struct {
	id        int64
	name      string
	code      Code
	createdAt time.Time
	claimed   bool
}

func NewPrize(id int64, name string, code Code, now time.Time) (*Prize, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return nil, ErrInvalidName
	}
	if _, err := ParseCode(code.String()); err != nil {
		return nil, err
	}

	return &Prize{
		id:        id,
		name:      name,
		code:      code,
		createdAt: now,
	}, nil
}

func ReconstructPrize(id int64, name string, code Code, createdAt time.Time, claimed bool) *Prize {
	return &Prize{
		id:        id,
		name:      name,
		code:      code,
		createdAt: createdAt,
		claimed:   claimed,
	}
}

// Claim is idempotent and does not check expiry.
func (p *Prize) Claim() {
	p.claimed = true
}

func (p *Prize) Age(now time.Time) time.Duration {
	return now.Sub(p.createdAt)
}

func (p *Prize) StatusAt(now time.Time, ttl time.Duration) Status {
	if p.claimed {
		return StatusClaimed
	}
	if p.Age(now) >= ttl {
		return StatusExpired
	}
	return StatusActive
}

func (p *Prize) IsValidAt(now time.Time, ttl time.Duration) bool {
	return p.StatusAt(now, ttl) == StatusActive
}

// TimeToExpiryAt reports ttl - age while it is positive. Claimed prizes keep
// their clock; the remaining time says nothing about redeemability.
func (p *Prize) TimeToExpiryAt(now time.Time, ttl time.Duration) (time.Duration, bool) {
	remaining := ttl - p.Age(now)
	if remaining <= 0 {
		return 0, false
	}
	return remaining, true
}

func (p *Prize) IsCompactableAt(now time.Time, ttl time.Duration) bool {
	return p.StatusAt(now, ttl) == StatusExpired
}

func (p *Prize) ExpiresAt(ttl time.Duration) time.Time {
	return p.createdAt.Add(ttl)
}

func (p *Prize) UniqueCode(ttl time.Duration) UniqueCode {
	return UniqueCode{
		Code:      p.code,
		PrizeID:   p.id,
		CreatedAt: p.createdAt,
		ExpiresAt: p.ExpiresAt(ttl),
		IsUsed:    p.claimed,
	}
}

func (p *Prize) ID() int64            { return p.id }
func (p *Prize) Name() string         { return p.name }
func (p *Prize) Code() Code           { return p.code }
func (p *Prize) CreatedAt() time.Time { return p.createdAt }
func (p *Prize) Claimed() bool        { return p.claimed }

// UniqueCode is the redemption view of a prize's code.
type UniqueCode struct {
	Code      Code
	PrizeID   int64
	CreatedAt time.Time
	ExpiresAt time.Time
	IsUsed    bool
}

func (u UniqueCode) IsExpiredAt(now time.Time) bool {
	return !now.Before(u.ExpiresAt)
}

// Partition splits prizes by their state at now. Every prize lands in exactly one slice.
func Partition(prizes []*Prize, now time.Time, ttl time.Duration) (active, claimed, expired []*Prize) {
	for _, p := range prizes {
		switch p.StatusAt(now, ttl) {
		case StatusActive:
			active = append(active, p)
		case StatusClaimed:
			claimed = append(claimed, p)
		case StatusExpired:
			expired = append(expired, p)
		}
	}
	return active, claimed, expired
}

func FindByCode(prizes []*Prize, code Code) *Prize {
	for _, p := range prizes {
		if p.code == code {
			return p
		}
	}
	return nil
}
