package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"ruleta-server/internal/infra/cache"
	"ruleta-server/internal/infra/ttlstore"
	"ruleta-server/internal/pkg/clock"
	"ruleta-server/internal/pkg/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		clock.NewRealClock,
		NewMedium,
		NewStore,
		NewCache,
	),
	fx.Invoke(StartJanitor),
)

func NewMedium(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (ttlstore.Medium, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Store.RedisAddr,
			Password: cfg.Store.RedisPassword,
			DB:       cfg.Store.RedisDB,
		})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return fmt.Errorf("redis ping %s: %w", cfg.Store.RedisAddr, err)
				}
				logger.Info("Connected to Redis", "addr", cfg.Store.RedisAddr, "db", cfg.Store.RedisDB)
				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		return ttlstore.NewRedisMedium(client), nil
	case config.StoreBackendMemory:
		logger.Info("Using in-memory store", "quota_bytes", cfg.Store.QuotaBytes)
		return ttlstore.NewMemoryMedium(cfg.Store.QuotaBytes), nil
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND %q", cfg.Store.Backend)
	}
}

func NewStore(medium ttlstore.Medium, cfg config.Config, clk clock.Clock, logger *slog.Logger) *ttlstore.Store {
	return ttlstore.New(medium, cfg.Store.Namespace, clk, logger)
}

func NewCache(cfg config.Config, clk clock.Clock, logger *slog.Logger) *cache.Cache {
	return cache.New(cfg.Cache.DefaultTTL, clk, logger)
}

func StartJanitor(lc fx.Lifecycle, store *ttlstore.Store, cfg config.Config, logger *slog.Logger) {
	janitor := ttlstore.NewJanitor(store, cfg.Store.SweepInterval, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			janitor.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			janitor.Stop()
			return nil
		},
	})
}
