package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// RoomView represents read-optimized room data
type RoomView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// UserView is the embedded summary of a referenced user
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// ReservationView expands room and user references into embedded summaries
// rather than raw identifiers
type ReservationView struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	ReservedFrom time.Time  `json:"reserved_from"`
	ReservedTo   time.Time  `json:"reserved_to"`
	Room         RoomView   `json:"room"`
	Owner        UserView   `json:"owner"`
	Employees    []UserView `json:"employees"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// AuthorizedUserView represents read-optimized user data with account state
type AuthorizedUserView struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsActive  bool      `json:"is_active"`
}
