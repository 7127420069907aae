package reservation

import (
	"time"

	"room-booking-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrRoomOccupied = errs.New("selected room is occupied during requested period")
	ErrNotOwner     = errs.New("only the reservation owner can modify it")
)

// BookedInterval is one existing reservation's slice of a room's calendar,
// as loaded from the store for a single room.
type BookedInterval struct {
	ReservationID uuid.UUID
	From          time.Time
	To            time.Time
}

func (b BookedInterval) interval() Interval {
	return Interval{from: b.From, to: b.To}
}

// IsRoomAvailable reports whether candidate fits into the room's calendar
// given that room's existing reservations. A reservation whose ID equals
// exclude is skipped, so that validating an in-place update of that very
// reservation does not conflict with itself. Pass uuid.Nil to exclude
// nothing. The candidate's endpoint ordering is the caller's concern.
func IsRoomAvailable(existing []BookedInterval, candidate Interval, exclude uuid.UUID) bool {
	for _, b := range existing {
		if exclude != uuid.Nil && b.ReservationID == exclude {
			continue
		}
		if candidate.Overlaps(b.interval()) {
			return false
		}
	}
	return true
}

// CheckAvailability is the admission guard run before any write: it rejects
// reversed endpoints with ErrInvalidInterval, then rejects candidates that
// collide with an existing reservation with ErrRoomOccupied. On success it
// returns the validated interval.
func CheckAvailability(existing []BookedInterval, from, to time.Time, exclude uuid.UUID) (Interval, error) {
	iv, err := NewInterval(from, to)
	if err != nil {
		return Interval{}, err
	}
	if !IsRoomAvailable(existing, iv, exclude) {
		return Interval{}, ErrRoomOccupied
	}
	return iv, nil
}

// CheckOwnership authorizes a mutation: only the reservation's owner may
// update or delete it. Never applied to create or read.
func CheckOwnership(actorID, ownerID uuid.UUID) error {
	if actorID != ownerID {
		return ErrNotOwner
	}
	return nil
}
