package components

import (
	"log/slog"

	"booking-system/internal/pkg/clock"
	"booking-system/internal/pkg/jwt"
	"booking-system/internal/usecase"
	"booking-system/internal/usecase/commands"
	"booking-system/internal/usecase/queries"

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
	commands.NewConflictChecker,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAuthCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewAuthCommands(users commands.UserRepository, jwtService *jwt.Service, logger *slog.Logger) commands.AuthCommands {
	return commands.NewAuthCommands(users, jwtService, jwtService.TokenDuration(), logger)
}
