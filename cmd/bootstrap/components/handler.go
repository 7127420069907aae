package components

import (
	"room-booking-api/internal/handler"
	"room-booking-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewReservationHandler,
		handler.NewRouter,
	),
)
