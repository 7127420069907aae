//go:build unit || e2e

package builder

import (
	"time"

	reqdto "room-booking-api/internal/handler/dto/request"
	"room-booking-api/internal/usecase/commands"
	"room-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID           uuid.UUID
	Title        string
	RoomID       uuid.UUID
	RoomTitle    string
	OwnerID      uuid.UUID
	OwnerEmail   string
	EmployeeIDs  []uuid.UUID
	ReservedFrom time.Time
	ReservedTo   time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:           uuid.New(),
		Title:        "Weekly sync",
		RoomID:       uuid.New(),
		RoomTitle:    "Room 1",
		OwnerID:      uuid.New(),
		OwnerEmail:   "owner@example.com",
		EmployeeIDs:  nil,
		ReservedFrom: now,
		ReservedTo:   now.Add(2 * time.Hour),
		CreatedAt:    now.Add(-24 * time.Hour),
		UpdatedAt:    now.Add(-24 * time.Hour),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildRequestDTO() reqdto.ReservationRequest {
	return reqdto.ReservationRequest{
		Title:        b.Title,
		Room:         b.RoomID,
		ReservedFrom: b.ReservedFrom,
		ReservedTo:   b.ReservedTo,
		Owner:        b.OwnerID,
		Employees:    b.EmployeeIDs,
	}
}

func (b *ReservationBuilder) BuildInput() commands.ReservationInput {
	return commands.ReservationInput{
		Title:        b.Title,
		RoomID:       b.RoomID,
		OwnerID:      b.OwnerID,
		EmployeeIDs:  b.EmployeeIDs,
		ReservedFrom: b.ReservedFrom,
		ReservedTo:   b.ReservedTo,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	employees := make([]queries.UserView, 0, len(b.EmployeeIDs))
	for i, id := range b.EmployeeIDs {
		employees = append(employees, queries.UserView{
			ID:        id,
			Email:     "employee" + string(rune('a'+i)) + "@example.com",
			FirstName: "Employee",
			LastName:  "User",
		})
	}
	return &queries.ReservationView{
		ID:           b.ID,
		Title:        b.Title,
		ReservedFrom: b.ReservedFrom,
		ReservedTo:   b.ReservedTo,
		Room: queries.RoomView{
			ID:        b.RoomID,
			Title:     b.RoomTitle,
			CreatedAt: b.CreatedAt,
		},
		Owner: queries.UserView{
			ID:        b.OwnerID,
			Email:     b.OwnerEmail,
			FirstName: "Owner",
			LastName:  "User",
		},
		Employees: employees,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
