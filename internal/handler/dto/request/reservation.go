package request

import (
	"time"

	"room-booking-api/internal/usecase/commands"

	"github.com/google/uuid"
)

// ReservationRequest is the full field set for create and update. Title may
// be empty; employees default to none.
type ReservationRequest struct {
	Title        string      `json:"title"`
	Room         uuid.UUID   `json:"room" binding:"required"`
	ReservedFrom time.Time   `json:"reserved_from" binding:"required"`
	ReservedTo   time.Time   `json:"reserved_to" binding:"required"`
	Owner        uuid.UUID   `json:"owner" binding:"required"`
	Employees    []uuid.UUID `json:"employees"`
}

func (r ReservationRequest) ToInput() commands.ReservationInput {
	return commands.ReservationInput{
		Title:        r.Title,
		RoomID:       r.Room,
		OwnerID:      r.Owner,
		EmployeeIDs:  r.Employees,
		ReservedFrom: r.ReservedFrom,
		ReservedTo:   r.ReservedTo,
	}
}
