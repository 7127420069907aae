package components

import (
	"room-booking-api/internal/pkg/clock"
	"room-booking-api/internal/pkg/jwt"
	"room-booking-api/internal/usecase"
	"room-booking-api/internal/usecase/commands"
	"room-booking-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			func(svc *jwt.Service) *jwt.Service { return svc },
			fx.As(new(usecase.TokenService)),
		),
		usecase.NewAuthUseCase,
		commands.NewReservationCommands,
		queries.NewRoomQueries,
		queries.NewReservationQueries,
	),
)
