package components

import (
	"log/slog"

	"ruleta-server/internal/domain/prize"
	"ruleta-server/internal/pkg/config"
	"ruleta-server/internal/pkg/jwt"
	"ruleta-server/internal/usecase"
	"ruleta-server/internal/usecase/commands"
	"ruleta-server/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		fx.Annotate(
			prize.NewRandomCodeGenerator,
			fx.As(new(prize.CodeGenerator)),
		),
		// Commands
		commands.NewPrizeCommands,
		commands.NewCacheCommands,
		// Queries
		queries.NewPrizeQueries,
		queries.NewReportQueries,
		// Auth
		NewAdminAuth,
		usecase.NewTokenValidator,
	),
)

func NewAdminAuth(cfg config.Config, jwtService *jwt.Service, logger *slog.Logger) usecase.AdminAuth {
	return usecase.NewAdminAuth(cfg.Admin.PasswordHash, jwtService, logger)
}
