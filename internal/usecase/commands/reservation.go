package commands

import (
	"context"
	"time"

	"room-booking-api/internal/domain/reservation"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/pkg/clock"
	"room-booking-api/internal/pkg/errs"
	"room-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrRoomNotFound        = errs.New("room not found")
	ErrUserNotFound        = errs.New("user not found")
)

type ReservationCommands interface {
	Create(ctx context.Context, actorID uuid.UUID, input ReservationInput) (uuid.UUID, error)
	Update(ctx context.Context, actorID uuid.UUID, id uuid.UUID, input ReservationInput) error
	Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error
}

// ReservationInput carries the full desired state of a reservation. Updates
// replace every field, so create and update share the same shape.
type ReservationInput struct {
	Title        string
	RoomID       uuid.UUID
	OwnerID      uuid.UUID
	EmployeeIDs  []uuid.UUID
	ReservedFrom time.Time
	ReservedTo   time.Time
}

type reservationCommandsImpl struct {
	uow shared.UnitOfWork
	clk clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, clk: clk}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, actorID uuid.UUID, input ReservationInput) (uuid.UUID, error) {
	var createdID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := c.checkReferences(ctx, tx, input); err != nil {
			return err
		}

		iv, err := c.checkAvailability(ctx, tx, input, uuid.Nil)
		if err != nil {
			return err
		}

		res := reservation.NewReservation(
			input.Title, input.RoomID, input.OwnerID, input.EmployeeIDs, iv, c.clk.Now())
		if err := tx.Reservations().Create(ctx, tx.DB(), res); err != nil {
			return translateWriteErr(err)
		}
		createdID = res.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

func (c *reservationCommandsImpl) Update(ctx context.Context, actorID uuid.UUID, id uuid.UUID, input ReservationInput) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		if err := reservation.CheckOwnership(actorID, snap.OwnerID); err != nil {
			return err
		}

		if err := c.checkReferences(ctx, tx, input); err != nil {
			return err
		}

		// The reservation's own slot must not block moving it within the
		// same room, so its ID is excluded from the overlap scan.
		iv, err := c.checkAvailability(ctx, tx, input, id)
		if err != nil {
			return err
		}

		res := reservation.ReconstructReservation(
			id, input.Title, input.RoomID, snap.OwnerID, input.EmployeeIDs,
			iv, snap.CreatedAt, c.clk.Now())
		if err := tx.Reservations().Update(ctx, tx.DB(), res); err != nil {
			return translateWriteErr(err)
		}
		return nil
	})
}

func (c *reservationCommandsImpl) Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}

		if err := reservation.CheckOwnership(actorID, snap.OwnerID); err != nil {
			return err
		}

		if err := tx.Reservations().Delete(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		return nil
	})
}

func (c *reservationCommandsImpl) checkReferences(ctx context.Context, tx shared.Tx, input ReservationInput) error {
	exists, err := tx.Reads().RoomExists(ctx, input.RoomID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrRoomNotFound
	}

	userIDs := dedupe(append([]uuid.UUID{input.OwnerID}, input.EmployeeIDs...))
	ok, err := tx.Reads().UsersExist(ctx, userIDs)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}

func (c *reservationCommandsImpl) checkAvailability(ctx context.Context, tx shared.Tx, input ReservationInput, exclude uuid.UUID) (reservation.Interval, error) {
	booked, err := tx.Reads().BookedIntervals(ctx, input.RoomID)
	if err != nil {
		return reservation.Interval{}, err
	}
	return reservation.CheckAvailability(booked, input.ReservedFrom, input.ReservedTo, exclude)
}

// translateWriteErr maps the exclusion-constraint conflict raised on commit
// races to the same occupied-room rejection the in-transaction scan gives.
func translateWriteErr(err error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return reservation.ErrRoomOccupied
	}
	if infra.IsKind(err, infra.KindForeignKeyViolated) {
		return ErrUserNotFound
	}
	return err
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
