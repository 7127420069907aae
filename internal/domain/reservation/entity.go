package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Reservation books a single room for a closed time interval on behalf of
// an owner, with zero or more attendee employees. The title may be empty.
type Reservation struct {
	id          uuid.UUID
	title       string
	roomID      uuid.UUID
	ownerID     uuid.UUID
	employeeIDs []uuid.UUID
	interval    Interval
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReservation(title string, roomID, ownerID uuid.UUID, employeeIDs []uuid.UUID, iv Interval, now time.Time) *Reservation {
	return &Reservation{
		id:          uuid.New(),
		title:       title,
		roomID:      roomID,
		ownerID:     ownerID,
		employeeIDs: dedupeIDs(employeeIDs),
		interval:    iv,
		createdAt:   now,
		updatedAt:   now,
	}
}

// ReconstructReservation rebuilds the aggregate with a known identity, used
// for full-replace updates where every field except the ID comes from the
// request.
func ReconstructReservation(id uuid.UUID, title string, roomID, ownerID uuid.UUID, employeeIDs []uuid.UUID, iv Interval, createdAt, updatedAt time.Time) *Reservation {
	return &Reservation{
		id:          id,
		title:       title,
		roomID:      roomID,
		ownerID:     ownerID,
		employeeIDs: dedupeIDs(employeeIDs),
		interval:    iv,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID            { return r.id }
func (r *Reservation) Title() string            { return r.title }
func (r *Reservation) RoomID() uuid.UUID        { return r.roomID }
func (r *Reservation) OwnerID() uuid.UUID       { return r.ownerID }
func (r *Reservation) EmployeeIDs() []uuid.UUID { return r.employeeIDs }
func (r *Reservation) Interval() Interval       { return r.interval }
func (r *Reservation) ReservedFrom() time.Time  { return r.interval.From() }
func (r *Reservation) ReservedTo() time.Time    { return r.interval.To() }
func (r *Reservation) CreatedAt() time.Time     { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time     { return r.updatedAt }

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.ownerID == userID
}

// Attendees form a set; duplicate IDs in a request collapse to one while
// preserving first-seen order.
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
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
