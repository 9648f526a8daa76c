package components

import (
	"ticket-marketplace/internal/pkg/clock"
	"ticket-marketplace/internal/usecase"
	"ticket-marketplace/internal/usecase/commands"
	"ticket-marketplace/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAdmissionCommands,
		commands.NewCheckoutCommands,
		commands.NewSettlementCommands,
		commands.NewRefundCommands,
		commands.NewSellerCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQueueQueries,
		queries.NewTicketQueries,
		queries.NewRefundQueries,
		queries.NewSellerQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
