package bootstrap

import (
	"ruleta-server/internal/domain/prize"
	"ruleta-server/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewPrizePolicy,
	),
)

func NewPrizePolicy(cfg config.Config) (prize.Policy, error) {
	return prize.NewPolicy(cfg.Prize.TTL)
}
