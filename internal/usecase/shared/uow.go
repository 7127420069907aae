package shared

import (
	"context"
	"time"

	"room-booking-api/internal/domain/reservation"
	"room-booking-api/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn inside a serializable transaction, retried on
	// serialization failure. Every guard-then-write sequence goes through
	// here so the availability check and the write commit or fail as one
	// unit.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: direct access to command-side reads outside a transaction
	Reads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	RoomExists(ctx context.Context, id uuid.UUID) (bool, error)
	UsersExist(ctx context.Context, ids []uuid.UUID) (bool, error)
	// BookedIntervals loads one room's reservation intervals for the
	// availability guard.
	BookedIntervals(ctx context.Context, roomID uuid.UUID) ([]reservation.BookedInterval, error)
}

// Minimal snapshot for command-side guard checks
type ReservationSnapshot struct {
	ID           uuid.UUID
	RoomID       uuid.UUID
	OwnerID      uuid.UUID
	ReservedFrom time.Time
	ReservedTo   time.Time
	CreatedAt    time.Time
}

type ReservationRepository interface {
	Create(ctx context.Context, db db.DBTX, res *reservation.Reservation) error
	Update(ctx context.Context, db db.DBTX, res *reservation.Reservation) error
	Delete(ctx context.Context, db db.DBTX, id uuid.UUID) error
}
