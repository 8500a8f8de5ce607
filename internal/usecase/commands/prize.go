package commands

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"time"

	"ruleta-server/internal/domain/prize"
	"ruleta-server/internal/infra"
	"ruleta-server/internal/pkg/clock"
	"ruleta-server/internal/pkg/errs"
	"ruleta-server/internal/usecase/queries"
)

var (
	errUnknownCode      = errs.New("unknown prize code")
	errNothingToCompact = errs.New("nothing to compact")
)

var reportKeys = regexp.MustCompile("^" + regexp.QuoteMeta(queries.ReportKeyPrefix))

// PrizeCommands mutates the prize collection. Every successful mutation drops
// the memoised reports.
type PrizeCommands interface {
	Issue(ctx context.Context, name string) (*prize.Prize, error)
	Claim(ctx context.Context, code string) (bool, error)
	Compact(ctx context.Context) (int, error)
}

type prizeCommandsImpl struct {
	repo      PrizeRepository
	reports   PatternInvalidator
	generator prize.CodeGenerator
	clock     clock.Clock
	policy    prize.Policy
	logger    *slog.Logger
}

func NewPrizeCommands(
	repo PrizeRepository,
	reports PatternInvalidator,
	generator prize.CodeGenerator,
	clk clock.Clock,
	policy prize.Policy,
	logger *slog.Logger,
) PrizeCommands {
	return &prizeCommandsImpl{
		repo:      repo,
		reports:   reports,
		generator: generator,
		clock:     clk,
		policy:    policy,
		logger:    logger,
	}
}

func (c *prizeCommandsImpl) Issue(ctx context.Context, name string) (*prize.Prize, error) {
	var issued *prize.Prize
	err := c.repo.Mutate(ctx, func(prizes []*prize.Prize) ([]*prize.Prize, error) {
		now := c.clock.Now()
		p, err := prize.NewPrize(nextID(prizes, now), name, c.generator.Generate(), now)
		if err != nil {
			return nil, err
		}
		issued = p
		return append(prizes, p), nil
	})
	if err != nil {
		if errors.Is(err, prize.ErrInvalidName) {
			return nil, errs.Mark(err, errs.ErrInvalidPrizeName)
		}
		return nil, c.storageErr(err, "failed to issue prize")
	}

	c.invalidateReports()
	c.logger.Info("Prize issued", "id", issued.ID(), "code", issued.Code().String())
	return issued, nil
}

// Claim marks the prize with code as claimed. It answers true for any known
// code, including one that is already claimed or past its validity window.
func (c *prizeCommandsImpl) Claim(ctx context.Context, code string) (bool, error) {
	parsed, err := prize.ParseCode(code)
	if err != nil {
		return false, nil
	}

	err = c.repo.Mutate(ctx, func(prizes []*prize.Prize) ([]*prize.Prize, error) {
		p := prize.FindByCode(prizes, parsed)
		if p == nil {
			return nil, errUnknownCode
		}
		p.Claim()
		return prizes, nil
	})
	if errors.Is(err, errUnknownCode) {
		return false, nil
	}
	if err != nil {
		return false, c.storageErr(err, "failed to claim prize")
	}

	c.invalidateReports()
	c.logger.Info("Prize claimed", "code", parsed.String())
	return true, nil
}

// Compact drops unclaimed prizes past their validity window and reports how
// many were removed. Claimed prizes are kept regardless of age.
func (c *prizeCommandsImpl) Compact(ctx context.Context) (int, error) {
	removed := 0
	err := c.repo.Mutate(ctx, func(prizes []*prize.Prize) ([]*prize.Prize, error) {
		now := c.clock.Now()
		kept := make([]*prize.Prize, 0, len(prizes))
		for _, p := range prizes {
			if p.IsCompactableAt(now, c.policy.TTL) {
				continue
			}
			kept = append(kept, p)
		}
		removed = len(prizes) - len(kept)
		if removed == 0 {
			return nil, errNothingToCompact
		}
		return kept, nil
	})
	if errors.Is(err, errNothingToCompact) {
		return 0, nil
	}
	if err != nil {
		return 0, c.storageErr(err, "failed to compact prizes")
	}

	c.invalidateReports()
	c.logger.Info("Prize collection compacted", "removed", removed)
	return removed, nil
}

func (c *prizeCommandsImpl) invalidateReports() {
	if n := c.reports.InvalidatePattern(reportKeys); n > 0 {
		c.logger.Debug("Reports invalidated", "entries", n)
	}
}

func (c *prizeCommandsImpl) storageErr(err error, msg string) error {
	err = errs.Wrap(err, msg)
	if infra.IsKind(err, infra.KindStorageWrite) || infra.IsKind(err, infra.KindStorageRead) {
		return errs.Mark(err, errs.ErrStorageUnavailable)
	}
	return err
}

// nextID keeps ids time-ordered and strictly increasing even when two prizes
// are issued within the same millisecond.
func nextID(prizes []*prize.Prize, now time.Time) int64 {
	id := clock.Millis(now)
	for _, p := range prizes {
		if p.ID() >= id {
			id = p.ID() + 1
		}
	}
	return id
}
