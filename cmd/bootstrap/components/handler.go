package components

import (
	"ruleta-server/internal/handler"
	"ruleta-server/internal/handler/api"
	"ruleta-server/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPrizeHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(auth *api.AuthHandler, prize *api.PrizeHandler, admin *api.AdminHandler) handler.Handlers {
	return handler.Handlers{Auth: auth, Prize: prize, Admin: admin}
}
