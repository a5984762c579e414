package components

import (
	"shalean-booking-api/internal/handler"
	"shalean-booking-api/internal/handler/api"
	"shalean-booking-api/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewWizardHandler,
		api.NewCheckoutHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
