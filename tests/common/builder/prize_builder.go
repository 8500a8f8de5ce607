//go:build unit

package builder

import (
	"time"

	"ruleta-server/internal/domain/prize"
	reqdto "ruleta-server/internal/handler/dto/request"
	"ruleta-server/internal/usecase/queries"
)

const DefaultTTL = 24 * time.Hour

type PrizeBuilder struct {
	ID        int64
	Name      string
	Code      prize.Code
	CreatedAt time.Time
	Claimed   bool
}

func NewPrizeBuilder() *PrizeBuilder {
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &PrizeBuilder{
		ID:        createdAt.UnixMilli(),
		Name:      "Coffee mug",
		Code:      "ABC-12-Z",
		CreatedAt: createdAt,
	}
}

func (b *PrizeBuilder) With(mutate func(*PrizeBuilder)) *PrizeBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *PrizeBuilder) BuildDomain() *prize.Prize {
	return prize.ReconstructPrize(b.ID, b.Name, b.Code, b.CreatedAt, b.Claimed)
}

// BuildView evaluates the prize at now against DefaultTTL.
func (b *PrizeBuilder) BuildView(now time.Time) *queries.PrizeView {
	p := b.BuildDomain()
	remaining, _ := p.TimeToExpiryAt(now, DefaultTTL)
	expiresAt := p.ExpiresAt(DefaultTTL)
	return &queries.PrizeView{
		ID:        b.ID,
		Name:      b.Name,
		Code:      b.Code.String(),
		Status:    p.StatusAt(now, DefaultTTL).String(),
		Claimed:   b.Claimed,
		CreatedAt: b.CreatedAt,
		ExpiresAt: expiresAt,
		Remaining: remaining,
		UniqueCode: queries.UniqueCodeView{
			Code:      b.Code.String(),
			PrizeID:   b.ID,
			CreatedAt: b.CreatedAt,
			ExpiresAt: expiresAt,
			IsUsed:    b.Claimed,
		},
	}
}

func (b *PrizeBuilder) BuildIssueRequestDTO() reqdto.IssuePrizeRequest {
	return reqdto.IssuePrizeRequest{Name: b.Name}
}
