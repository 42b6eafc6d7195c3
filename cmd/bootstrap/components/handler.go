package components

import (
	"order-engine/internal/handler"
	"order-engine/internal/handler/api"
	"order-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTransactionHandler,
		api.NewOrderHandler,
		api.NewMembershipHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
