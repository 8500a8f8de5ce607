package commands

import (
	"context"
	"log/slog"
	"regexp"

	"ruleta-server/internal/pkg/errs"
)

// CacheCommands exposes manual invalidation of the pattern cache to operators.
type CacheCommands interface {
	Invalidate(ctx context.Context, pattern string) (int, error)
}

type cacheCommandsImpl struct {
	cache  PatternInvalidator
	logger *slog.Logger
}

func NewCacheCommands(cache PatternInvalidator, logger *slog.Logger) CacheCommands {
	return &cacheCommandsImpl{
		cache:  cache,
		logger: logger,
	}
}

func (c *cacheCommandsImpl) Invalidate(_ context.Context, pattern string) (int, error) {
	if pattern == "" {
		return 0, errs.ErrInvalidPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, errs.Mark(errs.Wrapf(err, "pattern %q", pattern), errs.ErrInvalidPattern)
	}

	n := c.cache.InvalidatePattern(re)
	c.logger.Info("Cache entries invalidated", "pattern", pattern, "entries", n)
	return n, nil
}
