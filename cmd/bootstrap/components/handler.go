package components

import (
	"storebook/internal/handler"
	"storebook/internal/handler/api"
	"storebook/internal/handler/middleware"
	"storebook/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig { return cfg.Cookie },
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewStoreHandler,
		api.NewReviewHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
