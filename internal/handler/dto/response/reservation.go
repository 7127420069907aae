package response

import (
	"room-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const timestampLayout = "2006-01-02 15:04"

type RoomSummary struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// ReservationResponse expands room and user references into embedded
// summaries.
type ReservationResponse struct {
	ID           uuid.UUID     `json:"id"`
	Title        string        `json:"title"`
	ReservedFrom string        `json:"reserved_from"`
	ReservedTo   string        `json:"reserved_to"`
	Room         RoomSummary   `json:"room"`
	Owner        UserSummary   `json:"owner"`
	Employees    []UserSummary `json:"employees"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
}

func NewReservationResponse(view *queries.ReservationView) ReservationResponse {
	resp := ReservationResponse{
		ID:           view.ID,
		Title:        view.Title,
		ReservedFrom: view.ReservedFrom.Format(timestampLayout),
		ReservedTo:   view.ReservedTo.Format(timestampLayout),
		Employees:    []UserSummary{},
		CreatedAt:    view.CreatedAt.Format(timestampLayout),
		UpdatedAt:    view.UpdatedAt.Format(timestampLayout),
	}
	_ = copier.Copy(&resp.Room, &view.Room)
	_ = copier.Copy(&resp.Owner, &view.Owner)
	if len(view.Employees) > 0 {
		_ = copier.Copy(&resp.Employees, &view.Employees)
	}
	return resp
}

func NewReservationListResponse(views []*queries.ReservationView) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewReservationResponse(v))
	}
	return out
}
