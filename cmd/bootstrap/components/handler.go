package components

import (
	"gift-occasions/internal/handler"
	"gift-occasions/internal/handler/api"
	"gift-occasions/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewOccasionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
