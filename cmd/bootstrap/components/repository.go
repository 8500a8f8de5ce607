package components

import (
	"log/slog"

	"ruleta-server/internal/infra/cache"
	"ruleta-server/internal/infra/repository"
	"ruleta-server/internal/infra/ttlstore"
	"ruleta-server/internal/pkg/config"
	"ruleta-server/internal/usecase/commands"
	"ruleta-server/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewPrizeRepository,
			fx.As(new(commands.PrizeRepository)),
			fx.As(new(queries.PrizeReader)),
		),
		NewPatternInvalidator,
	),
)

func NewPrizeRepository(store *ttlstore.Store, cfg config.Config, logger *slog.Logger) *repository.PrizeRepository {
	// the collection entry lives as long as a single prize
	return repository.NewPrizeRepository(store, cfg.Prize.CollectionKey, cfg.Prize.TTL, logger)
}

func NewPatternInvalidator(c *cache.Cache) commands.PatternInvalidator {
	return c
}
