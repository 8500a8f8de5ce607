//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"testing"
	"time"

	"ruleta-server/cmd/bootstrap"
	"ruleta-server/cmd/bootstrap/components"
	"ruleta-server/internal/infra/cache"
	"ruleta-server/internal/pkg/config"
	"ruleta-server/internal/pkg/password"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

const AdminPassword = "e2e-admin-password"

// ------------------------------------------------------------
// per-suite environment: one Redis server, one fx app
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*miniredis.Miniredis, *gin.Engine, *cache.Cache, config.Config) {
	gin.SetMode(gin.TestMode)

	redisServer := miniredis.RunT(t)

	cfg := createTestConfig(t, redisServer.Addr())
	router, reports, app := buildE2EApp(t, cfg)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			t.Logf("failed to stop fx app: %v", err)
		}
	})

	return redisServer, router, reports, cfg
}

func createTestConfig(t *testing.T, redisAddr string) config.Config {
	t.Helper()
	cfg := config.NewTestConfig()
	cfg.Store.Backend = config.StoreBackendRedis
	cfg.Store.RedisAddr = redisAddr

	hash, err := password.HashPassword(AdminPassword, 4)
	require.NoError(t, err, "failed to hash admin password")
	cfg.Admin.PasswordHash = hash
	return cfg
}

// ------------------------------------------------------------
// builds the production graph with a fixed config
// ------------------------------------------------------------
func buildE2EApp(t *testing.T, cfg config.Config) (*gin.Engine, *cache.Cache, *fx.App) {
	t.Helper()
	var (
		router  *gin.Engine
		reports *cache.Cache
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			func() config.Config { return cfg },
			bootstrap.NewPrizePolicy,
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StoreModule,
		bootstrap.JWTModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &reports),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		require.FailNow(t, fmt.Sprintf("failed to start fx app: %v", err))
	}
	require.NotNil(t, router, "router was not populated")

	return router, reports, app
}

// ------------------------------------------------------------
// shared setup for e2e suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Redis  *miniredis.Miniredis
	Cache  *cache.Cache
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	s.Redis, s.Router, s.Cache, s.Config = setupE2EEnvironment(s.T())
}

// SetupSubTest starts every subtest from an empty store and a cold report cache.
func (s *SharedSuite) SetupSubTest() {
	s.Redis.FlushAll()
	s.Cache.Clear()
}
