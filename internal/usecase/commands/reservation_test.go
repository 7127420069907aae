//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"room-booking-api/internal/domain/reservation"
	"room-booking-api/internal/infra"
	"room-booking-api/internal/infra/db"
	"room-booking-api/internal/pkg/clock"
	"room-booking-api/internal/usecase/commands"
	"room-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h int) time.Time {
	return time.Date(2026, 3, 10, h, 0, 0, 0, time.UTC)
}

// fakeState is an in-memory stand-in for the Postgres unit of work. Guards
// run against it exactly as they would against transaction-scoped reads.
type fakeState struct {
	rooms        map[uuid.UUID]bool
	users        map[uuid.UUID]bool
	reservations map[uuid.UUID]*shared.ReservationSnapshot

	createErr error
	updateErr error

	created []uuid.UUID
	updated []uuid.UUID
	deleted []uuid.UUID
}

func newFakeState() *fakeState {
	return &fakeState{
		rooms:        map[uuid.UUID]bool{},
		users:        map[uuid.UUID]bool{},
		reservations: map[uuid.UUID]*shared.ReservationSnapshot{},
	}
}

func (s *fakeState) addReservation(roomID, ownerID uuid.UUID, from, to time.Time) uuid.UUID {
	id := uuid.New()
	s.reservations[id] = &shared.ReservationSnapshot{
		ID:           id,
		RoomID:       roomID,
		OwnerID:      ownerID,
		ReservedFrom: from,
		ReservedTo:   to,
		CreatedAt:    from.Add(-24 * time.Hour),
	}
	return id
}

type fakeUoW struct{ state *fakeState }

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{state: u.state})
}

func (u *fakeUoW) Reads() shared.CommandReads { return &fakeReads{state: u.state} }

type fakeTx struct{ state *fakeState }

func (t *fakeTx) Reservations() shared.ReservationRepository { return &fakeRepo{state: t.state} }
func (t *fakeTx) Reads() shared.CommandReads                 { return &fakeReads{state: t.state} }
func (t *fakeTx) DB() db.DBTX                                { return nil }

type fakeReads struct{ state *fakeState }

func (r *fakeReads) ReservationByID(_ context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	snap, ok := r.state.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return snap, nil
}

func (r *fakeReads) RoomExists(_ context.Context, id uuid.UUID) (bool, error) {
	return r.state.rooms[id], nil
}

func (r *fakeReads) UsersExist(_ context.Context, ids []uuid.UUID) (bool, error) {
	for _, id := range ids {
		if !r.state.users[id] {
			return false, nil
		}
	}
	return true, nil
}

func (r *fakeReads) BookedIntervals(_ context.Context, roomID uuid.UUID) ([]reservation.BookedInterval, error) {
	var booked []reservation.BookedInterval
	for _, snap := range r.state.reservations {
		if snap.RoomID != roomID {
			continue
		}
		booked = append(booked, reservation.BookedInterval{
			ReservationID: snap.ID,
			From:          snap.ReservedFrom,
			To:            snap.ReservedTo,
		})
	}
	return booked, nil
}

type fakeRepo struct{ state *fakeState }

func (r *fakeRepo) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) error {
	if r.state.createErr != nil {
		return r.state.createErr
	}
	r.state.reservations[res.ID()] = &shared.ReservationSnapshot{
		ID:           res.ID(),
		RoomID:       res.RoomID(),
		OwnerID:      res.OwnerID(),
		ReservedFrom: res.ReservedFrom(),
		ReservedTo:   res.ReservedTo(),
		CreatedAt:    res.CreatedAt(),
	}
	r.state.created = append(r.state.created, res.ID())
	return nil
}

func (r *fakeRepo) Update(_ context.Context, _ db.DBTX, res *reservation.Reservation) error {
	if r.state.updateErr != nil {
		return r.state.updateErr
	}
	if _, ok := r.state.reservations[res.ID()]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	r.state.reservations[res.ID()].RoomID = res.RoomID()
	r.state.reservations[res.ID()].ReservedFrom = res.ReservedFrom()
	r.state.reservations[res.ID()].ReservedTo = res.ReservedTo()
	r.state.updated = append(r.state.updated, res.ID())
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	if _, ok := r.state.reservations[id]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	delete(r.state.reservations, id)
	r.state.deleted = append(r.state.deleted, id)
	return nil
}

type fixture struct {
	state   *fakeState
	cmds    commands.ReservationCommands
	roomID  uuid.UUID
	ownerID uuid.UUID
	clk     *clock.MockClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	state := newFakeState()
	roomID := uuid.New()
	ownerID := uuid.New()
	state.rooms[roomID] = true
	state.users[ownerID] = true

	clk := clock.NewMockClock(at(8))
	return &fixture{
		state:   state,
		cmds:    commands.NewReservationCommands(&fakeUoW{state: state}, clk),
		roomID:  roomID,
		ownerID: ownerID,
		clk:     clk,
	}
}

func (f *fixture) input(from, to time.Time) commands.ReservationInput {
	return commands.ReservationInput{
		Title:        "standup",
		RoomID:       f.roomID,
		OwnerID:      f.ownerID,
		ReservedFrom: from,
		ReservedTo:   to,
	}
}

func TestReservationCommands_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)

		id, err := f.cmds.Create(ctx, f.ownerID, f.input(at(9), at(11)))

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)
		require.Len(t, f.state.created, 1)
		assert.Equal(t, id, f.state.created[0])
	})

	t.Run("inverted interval is rejected without a write", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.cmds.Create(ctx, f.ownerID, f.input(at(11), at(9)))

		assert.ErrorIs(t, err, reservation.ErrInvalidInterval)
		assert.Empty(t, f.state.created)
	})

	t.Run("touching endpoint conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.state.addReservation(f.roomID, f.ownerID, at(10), at(12))

		_, err := f.cmds.Create(ctx, f.ownerID, f.input(at(8), at(10)))

		assert.ErrorIs(t, err, reservation.ErrRoomOccupied)
		assert.Empty(t, f.state.created)
	})

	t.Run("same interval in another room is fine", func(t *testing.T) {
		f := newFixture(t)
		otherRoom := uuid.New()
		f.state.rooms[otherRoom] = true
		f.state.addReservation(otherRoom, f.ownerID, at(9), at(11))

		_, err := f.cmds.Create(ctx, f.ownerID, f.input(at(9), at(11)))

		assert.NoError(t, err)
	})

	t.Run("unknown room", func(t *testing.T) {
		f := newFixture(t)
		input := f.input(at(9), at(11))
		input.RoomID = uuid.New()

		_, err := f.cmds.Create(ctx, f.ownerID, input)

		assert.ErrorIs(t, err, commands.ErrRoomNotFound)
	})

	t.Run("unknown employee", func(t *testing.T) {
		f := newFixture(t)
		input := f.input(at(9), at(11))
		input.EmployeeIDs = []uuid.UUID{uuid.New()}

		_, err := f.cmds.Create(ctx, f.ownerID, input)

		assert.ErrorIs(t, err, commands.ErrUserNotFound)
	})

	t.Run("exclusion constraint race maps to occupied", func(t *testing.T) {
		f := newFixture(t)
		f.state.createErr = infra.WrapRepoErr("overlap", nil, infra.KindConflict)

		_, err := f.cmds.Create(ctx, f.ownerID, f.input(at(9), at(11)))

		assert.ErrorIs(t, err, reservation.ErrRoomOccupied)
	})
}

func TestReservationCommands_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success keeps identity and creation time", func(t *testing.T) {
		f := newFixture(t)
		id := f.state.addReservation(f.roomID, f.ownerID, at(9), at(11))

		err := f.cmds.Update(ctx, f.ownerID, id, f.input(at(13), at(15)))

		require.NoError(t, err)
		require.Len(t, f.state.updated, 1)
		assert.Equal(t, at(13), f.state.reservations[id].ReservedFrom)
	})

	t.Run("own slot does not block a shifted interval", func(t *testing.T) {
		f := newFixture(t)
		id := f.state.addReservation(f.roomID, f.ownerID, at(9), at(11))

		err := f.cmds.Update(ctx, f.ownerID, id, f.input(at(10), at(12)))

		assert.NoError(t, err)
	})

	t.Run("another booking still blocks", func(t *testing.T) {
		f := newFixture(t)
		id := f.state.addReservation(f.roomID, f.ownerID, at(9), at(11))
		f.state.addReservation(f.roomID, f.ownerID, at(13), at(15))

		err := f.cmds.Update(ctx, f.ownerID, id, f.input(at(12), at(14)))

		assert.ErrorIs(t, err, reservation.ErrRoomOccupied)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)

		err := f.cmds.Update(ctx, f.ownerID, uuid.New(), f.input(at(9), at(11)))

		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("non-owner is rejected before validation", func(t *testing.T) {
		f := newFixture(t)
		id := f.state.addReservation(f.roomID, f.ownerID, at(9), at(11))
		stranger := uuid.New()
		f.state.users[stranger] = true

		err := f.cmds.Update(ctx, stranger, id, f.input(at(11), at(9)))

		assert.ErrorIs(t, err, reservation.ErrNotOwner)
		assert.Empty(t, f.state.updated)
	})
}

func TestReservationCommands_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		id := f.state.addReservation(f.roomID, f.ownerID, at(9), at(11))

		err := f.cmds.Delete(ctx, f.ownerID, id)

		require.NoError(t, err)
		assert.NotContains(t, f.state.reservations, id)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)

		err := f.cmds.Delete(ctx, f.ownerID, uuid.New())

		assert.ErrorIs(t, err, commands.ErrReservationNotFound)
	})

	t.Run("non-owner leaves the reservation in place", func(t *testing.T) {
		f := newFixture(t)
		id := f.state.addReservation(f.roomID, f.ownerID, at(9), at(11))

		err := f.cmds.Delete(ctx, uuid.New(), id)

		assert.ErrorIs(t, err, reservation.ErrNotOwner)
		assert.Contains(t, f.state.reservations, id)
	})
}
