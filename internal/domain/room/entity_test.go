//go:build unit

package room

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewRoom(t *testing.T) {
	r := NewRoom("Room 1")

	assert.NotEqual(t, uuid.Nil, r.ID())
	assert.Equal(t, "Room 1", r.Title())
}

func TestNewRoom_EmptyTitle(t *testing.T) {
	assert.Equal(t, "", NewRoom("").Title())
}

func TestReconstructRoom(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)

	r := ReconstructRoom(id, "Room 2", createdAt)

	assert.Equal(t, id, r.ID())
	assert.Equal(t, "Room 2", r.Title())
	assert.Equal(t, createdAt, r.CreatedAt())
}
