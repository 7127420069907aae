package components

import (
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/infra/readstore"
	"room-booking-api/internal/infra/repository"
	"room-booking-api/internal/infra/uow"
	"room-booking-api/internal/usecase"
	"room-booking-api/internal/usecase/queries"
	"room-booking-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomViewRepo)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(usecase.UserReadStore)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserWriteStore)),
		),
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
