package components

import (
	"pestdesk/internal/handler/ws"
	"pestdesk/internal/pkg/clock"
	"pestdesk/internal/usecase"
	"pestdesk/internal/usecase/commands"
	"pestdesk/internal/usecase/queries"

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
	ws.NewHub,
	func(hub *ws.Hub) commands.ChatBroadcaster { return hub },
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAppointmentUseCase,
		commands.NewCustomerUseCase,
		commands.NewReviewUseCase,
		commands.NewChatUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewAppointmentQueries,
		queries.NewCustomerQueries,
		queries.NewReviewQueries,
		queries.NewChatQueries,
		queries.NewRouteQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
