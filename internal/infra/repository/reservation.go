package repository

import (
	"context"
	"errors"

	"room-booking-api/internal/domain/reservation"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgExclusionViolation  = "23P01"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error {
	_, err := dbtx.Exec(ctx,
		`INSERT INTO reservations (id, title, reserved_from, reserved_to, room_id, owner_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		res.ID(), res.Title(), res.ReservedFrom(), res.ReservedTo(),
		res.RoomID(), res.OwnerID(), res.CreatedAt(), res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err, classify(err)...)
	}
	return r.replaceEmployees(ctx, dbtx, res.ID(), res.EmployeeIDs())
}

func (r *ReservationRepository) Update(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE reservations
		 SET title = $2, reserved_from = $3, reserved_to = $4, room_id = $5, updated_at = $6
		 WHERE id = $1`,
		res.ID(), res.Title(), res.ReservedFrom(), res.ReservedTo(),
		res.RoomID(), res.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err, classify(err)...)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}

	if _, err := dbtx.Exec(ctx,
		`DELETE FROM reservation_employees WHERE reservation_id = $1`, res.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear reservation employees", err)
	}
	return r.replaceEmployees(ctx, dbtx, res.ID(), res.EmployeeIDs())
}

func (r *ReservationRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) replaceEmployees(ctx context.Context, dbtx db.DBTX, reservationID uuid.UUID, employeeIDs []uuid.UUID) error {
	for _, userID := range employeeIDs {
		if _, err := dbtx.Exec(ctx,
			`INSERT INTO reservation_employees (reservation_id, user_id) VALUES ($1, $2)`,
			reservationID, userID); err != nil {
			return infra.WrapRepoErr("failed to attach reservation employee", err, classify(err)...)
		}
	}
	return nil
}

// classify maps Postgres constraint violations to repository error kinds.
// The room_id/tstzrange exclusion constraint surfaces as KindConflict, which
// the command layer translates into the occupied-room rejection.
func classify(err error) []infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case pgExclusionViolation:
		return []infra.RepositoryErrorKind{infra.KindConflict}
	case pgForeignKeyViolation:
		return []infra.RepositoryErrorKind{infra.KindForeignKeyViolated}
	case pgUniqueViolation:
		return []infra.RepositoryErrorKind{infra.KindDuplicateKey}
	}
	return nil
}
