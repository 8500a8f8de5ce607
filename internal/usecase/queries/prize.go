package queries

import (
	"context"
	"sort"
	"time"

	"ruleta-server/internal/domain/prize"
	"ruleta-server/internal/pkg/clock"
)

// PrizeQueries answers lifecycle questions. Nothing here reports "not found"
// as an error: absence is a nil view, false or an empty slice.
type PrizeQueries interface {
	// Describe projects an already loaded prize at the current time.
	Describe(p *prize.Prize) *PrizeView
	FindByCode(ctx context.Context, code string) (*PrizeView, bool)
	IsValid(ctx context.Context, code string) bool
	TimeToExpiry(ctx context.Context, code string) (time.Duration, bool)
	ListActive(ctx context.Context) []*PrizeView
	ListClaimed(ctx context.Context) []*PrizeView
	ListExpired(ctx context.Context) []*PrizeView
}

type PrizeReader interface {
	FindAll(ctx context.Context) []*prize.Prize
}

type prizeQueriesImpl struct {
	reader PrizeReader
	clock  clock.Clock
	policy prize.Policy
}

func NewPrizeQueries(reader PrizeReader, clk clock.Clock, policy prize.Policy) PrizeQueries {
	return &prizeQueriesImpl{
		reader: reader,
		clock:  clk,
		policy: policy,
	}
}

func (q *prizeQueriesImpl) Describe(p *prize.Prize) *PrizeView {
	return toPrizeView(p, q.clock.Now(), q.policy)
}

func (q *prizeQueriesImpl) FindByCode(ctx context.Context, code string) (*PrizeView, bool) {
	p := q.find(ctx, code)
	if p == nil {
		return nil, false
	}
	return toPrizeView(p, q.clock.Now(), q.policy), true
}

func (q *prizeQueriesImpl) IsValid(ctx context.Context, code string) bool {
	p := q.find(ctx, code)
	return p != nil && p.IsValidAt(q.clock.Now(), q.policy.TTL)
}

func (q *prizeQueriesImpl) TimeToExpiry(ctx context.Context, code string) (time.Duration, bool) {
	p := q.find(ctx, code)
	if p == nil {
		return 0, false
	}
	return p.TimeToExpiryAt(q.clock.Now(), q.policy.TTL)
}

func (q *prizeQueriesImpl) ListActive(ctx context.Context) []*PrizeView {
	return q.list(ctx, prize.StatusActive)
}

func (q *prizeQueriesImpl) ListClaimed(ctx context.Context) []*PrizeView {
	return q.list(ctx, prize.StatusClaimed)
}

func (q *prizeQueriesImpl) ListExpired(ctx context.Context) []*PrizeView {
	return q.list(ctx, prize.StatusExpired)
}

func (q *prizeQueriesImpl) list(ctx context.Context, status prize.Status) []*PrizeView {
	return viewsWithStatus(q.reader.FindAll(ctx), status, q.clock.Now(), q.policy)
}

// find treats malformed codes like unknown ones.
func (q *prizeQueriesImpl) find(ctx context.Context, raw string) *prize.Prize {
	code, err := prize.ParseCode(raw)
	if err != nil {
		return nil
	}
	return prize.FindByCode(q.reader.FindAll(ctx), code)
}

// viewsWithStatus returns the partition for status, newest first.
func viewsWithStatus(prizes []*prize.Prize, status prize.Status, now time.Time, policy prize.Policy) []*PrizeView {
	active, claimed, expired := prize.Partition(prizes, now, policy.TTL)

	var selected []*prize.Prize
	switch status {
	case prize.StatusActive:
		selected = active
	case prize.StatusClaimed:
		selected = claimed
	case prize.StatusExpired:
		selected = expired
	}

	views := make([]*PrizeView, 0, len(selected))
	for _, p := range selected {
		views = append(views, toPrizeView(p, now, policy))
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].CreatedAt.After(views[j].CreatedAt)
	})
	return views
}

func toPrizeView(p *prize.Prize, now time.Time, policy prize.Policy) *PrizeView {
	remaining, _ := p.TimeToExpiryAt(now, policy.TTL)
	uc := p.UniqueCode(policy.TTL)
	return &PrizeView{
		ID:        p.ID(),
		Name:      p.Name(),
		Code:      p.Code().String(),
		Status:    p.StatusAt(now, policy.TTL).String(),
		Claimed:   p.Claimed(),
		CreatedAt: p.CreatedAt(),
		ExpiresAt: p.ExpiresAt(policy.TTL),
		Remaining: remaining,
		UniqueCode: UniqueCodeView{
			Code:      uc.Code.String(),
			PrizeID:   uc.PrizeID,
			CreatedAt: uc.CreatedAt,
			ExpiresAt: uc.ExpiresAt,
			IsUsed:    uc.IsUsed,
		},
	}
}
