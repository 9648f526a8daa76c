package components

import (
	"ticket-marketplace/internal/handler"
	"ticket-marketplace/internal/handler/api"
	"ticket-marketplace/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWebhookHandler,
		api.NewAdmissionHandler,
		api.NewCheckoutHandler,
		api.NewEventHandler,
		api.NewTicketHandler,
		api.NewSellerHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
