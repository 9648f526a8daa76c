package components

import (
	"ticket-marketplace/internal/infra/readstore"
	"ticket-marketplace/internal/infra/sqlq"
	"ticket-marketplace/internal/infra/uow"
	"ticket-marketplace/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Event
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EventReadQueries)),
		),
		fx.Annotate(
			readstore.NewEventReadStore,
			fx.As(new(queries.EventOwnerReadStore)),
		),
		// Refund attempts
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RefundAttemptReadQueries)),
		),
		fx.Annotate(
			readstore.NewRefundAttemptReadStore,
			fx.As(new(queries.RefundReadStore)),
		),
		// Ticket
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TicketReadQueries)),
		),
		fx.Annotate(
			readstore.NewTicketReadStore,
			fx.As(new(queries.TicketReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.ProfileReadStore)),
		),
		// Waiting list
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.WaitingListReadQueries)),
		),
		fx.Annotate(
			readstore.NewWaitingListReadStore,
			fx.As(new(queries.QueueReadStore)),
		),
	),
)

// Write repositories are built per transaction inside the unit of work.
var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlq.Queries {
	return sqlq.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlq.DBTX {
	return pool
}
