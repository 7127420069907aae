package room

import (
	"time"

	"github.com/google/uuid"
)

// Room is a meeting room. Rooms are administered out of band; from the
// booking core's perspective they are read-only reference data. The title
// may be empty, uniqueness is by ID only.
type Room struct {
	id        uuid.UUID
	title     string
	createdAt time.Time
}

func NewRoom(title string) *Room {
	return &Room{
		id:    uuid.New(),
		title: title,
	}
}

func ReconstructRoom(id uuid.UUID, title string, createdAt time.Time) *Room {
	return &Room{
		id:        id,
		title:     title,
		createdAt: createdAt,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Title() string        { return r.title }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
