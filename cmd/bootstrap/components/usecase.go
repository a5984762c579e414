package components

import (
	"shalean-booking-api/internal/handler/middleware"
	"shalean-booking-api/internal/pkg/clock"
	"shalean-booking-api/internal/usecase"
	"shalean-booking-api/internal/usecase/commands"
	"shalean-booking-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	usecase.NewAuthUseCase,
	// The auth use case doubles as the middleware token validator.
	func(uc usecase.AuthUseCase) middleware.TokenValidator { return uc },
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewCatalogQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewWizardUseCase,
		commands.NewCheckoutUseCase,
	),
)
