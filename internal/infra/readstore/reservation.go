package readstore

import (
	"context"
	"errors"

	"room-booking-api/internal/domain/reservation"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/usecase/queries"
	"room-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationViewSelect = `
	SELECT r.id, r.title, r.reserved_from, r.reserved_to, r.created_at, r.updated_at,
	       rm.id, rm.title, rm.created_at,
	       o.id, o.email, o.first_name, o.last_name
	FROM reservations r
	JOIN rooms rm ON rm.id = r.room_id
	JOIN users o ON o.id = r.owner_id`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, reservationViewSelect+" WHERE r.id = $1", id)

	view, err := scanReservationView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	if err := r.attachEmployees(ctx, []*queries.ReservationView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *ReservationReadStore) FindAll(ctx context.Context, roomID *uuid.UUID) ([]*queries.ReservationView, error) {
	query := reservationViewSelect
	args := []any{}
	if roomID != nil {
		query += " WHERE r.room_id = $1"
		args = append(args, *roomID)
	}
	query += " ORDER BY r.reserved_from, r.title"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var views []*queries.ReservationView
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	if err := r.attachEmployees(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// SnapshotByID loads the command-side snapshot used by the ownership and
// availability guards.
func (r *ReservationReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	var snap shared.ReservationSnapshot
	err := r.db.QueryRow(ctx,
		`SELECT id, room_id, owner_id, reserved_from, reserved_to, created_at
		 FROM reservations WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.RoomID, &snap.OwnerID, &snap.ReservedFrom, &snap.ReservedTo, &snap.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation snapshot", err)
	}
	return &snap, nil
}

// BookedIntervals returns one room's reservation intervals. Inside a
// serializable transaction this read pins the calendar the availability
// guard decides against.
func (r *ReservationReadStore) BookedIntervals(ctx context.Context, roomID uuid.UUID) ([]reservation.BookedInterval, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, reserved_from, reserved_to FROM reservations WHERE room_id = $1`, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load room intervals", err)
	}
	defer rows.Close()

	var booked []reservation.BookedInterval
	for rows.Next() {
		var b reservation.BookedInterval
		if err := rows.Scan(&b.ReservationID, &b.From, &b.To); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room interval", err)
		}
		booked = append(booked, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room intervals", err)
	}
	return booked, nil
}

func (r *ReservationReadStore) attachEmployees(ctx context.Context, views []*queries.ReservationView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(views))
	byID := make(map[uuid.UUID]*queries.ReservationView, len(views))
	for i, v := range views {
		ids[i] = v.ID
		byID[v.ID] = v
	}

	rows, err := r.db.Query(ctx,
		`SELECT re.reservation_id, u.id, u.email, u.first_name, u.last_name
		 FROM reservation_employees re
		 JOIN users u ON u.id = re.user_id
		 WHERE re.reservation_id = ANY($1)
		 ORDER BY u.email`, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to load reservation employees", err)
	}
	defer rows.Close()

	for rows.Next() {
		var reservationID uuid.UUID
		var emp queries.UserView
		if err := rows.Scan(&reservationID, &emp.ID, &emp.Email, &emp.FirstName, &emp.LastName); err != nil {
			return infra.WrapRepoErr("failed to scan reservation employee", err)
		}
		if view, ok := byID[reservationID]; ok {
			view.Employees = append(view.Employees, emp)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate reservation employees", err)
	}
	return nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := row.Scan(
		&v.ID, &v.Title, &v.ReservedFrom, &v.ReservedTo, &v.CreatedAt, &v.UpdatedAt,
		&v.Room.ID, &v.Room.Title, &v.Room.CreatedAt,
		&v.Owner.ID, &v.Owner.Email, &v.Owner.FirstName, &v.Owner.LastName,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
