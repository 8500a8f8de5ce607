package commands

import (
	"context"
	"regexp"

	"ruleta-server/internal/domain/prize"
)

type PrizeRepository interface {
	FindAll(ctx context.Context) []*prize.Prize
	Mutate(ctx context.Context, fn func(prizes []*prize.Prize) ([]*prize.Prize, error)) error
}

type PatternInvalidator interface {
	InvalidatePattern(re *regexp.Regexp) int
}
