package components

import (
	"shalean-booking-api/internal/infra/mailer"
	"shalean-booking-api/internal/infra/paystack"
	"shalean-booking-api/internal/infra/readstore"
	repo_impl "shalean-booking-api/internal/infra/repository"
	"shalean-booking-api/internal/infra/session"
	sqlc "shalean-booking-api/internal/infra/sqlc/generated"
	"shalean-booking-api/internal/usecase"
	"shalean-booking-api/internal/usecase/commands"
	"shalean-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		fx.Annotate(
			repo_impl.NewCustomerRepository,
			fx.As(new(usecase.CustomerRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
		),
		// Read-side stores for queries
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogViewRepo)),
		),
		// Wizard session state lives in Redis
		fx.Annotate(
			session.NewRedisStore,
			fx.As(new(session.Store)),
		),
		// External gateways
		fx.Annotate(
			paystack.NewClient,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			mailer.NewResendMailer,
			fx.As(new(commands.Mailer)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
