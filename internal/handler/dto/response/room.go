package response

import (
	"room-booking-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	CreatedAt string    `json:"created_at"`
}

func NewRoomResponse(view *queries.RoomView) RoomResponse {
	return RoomResponse{
		ID:        view.ID,
		Title:     view.Title,
		CreatedAt: view.CreatedAt.Format(timestampLayout),
	}
}

func NewRoomListResponse(views []*queries.RoomView) []RoomResponse {
	out := make([]RoomResponse, 0, len(views))
	for _, v := range views {
		out = append(out, NewRoomResponse(v))
	}
	return out
}
