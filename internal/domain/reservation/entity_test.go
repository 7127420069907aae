//go:build unit

package reservation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	roomID := uuid.New()
	ownerID := uuid.New()
	iv := mustInterval(t, at(9), at(11))
	now := at(8)

	t.Run("assigns a fresh identity and timestamps", func(t *testing.T) {
		res := NewReservation("standup", roomID, ownerID, nil, iv, now)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, "standup", res.Title())
		assert.Equal(t, roomID, res.RoomID())
		assert.Equal(t, ownerID, res.OwnerID())
		assert.Equal(t, now, res.CreatedAt())
		assert.Equal(t, now, res.UpdatedAt())
		assert.Equal(t, at(9), res.ReservedFrom())
		assert.Equal(t, at(11), res.ReservedTo())
	})

	t.Run("deduplicates employees preserving order", func(t *testing.T) {
		a, b := uuid.New(), uuid.New()
		res := NewReservation("", roomID, ownerID, []uuid.UUID{a, b, a, b}, iv, now)

		if diff := cmp.Diff([]uuid.UUID{a, b}, res.EmployeeIDs()); diff != "" {
			t.Errorf("employee IDs mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestReconstructReservation(t *testing.T) {
	id := uuid.New()
	roomID := uuid.New()
	ownerID := uuid.New()
	iv := mustInterval(t, at(13), at(15))

	res := ReconstructReservation(id, "moved", roomID, ownerID, nil, iv, at(7), at(12))

	require.Equal(t, id, res.ID())
	assert.Equal(t, "moved", res.Title())
	assert.Equal(t, at(7), res.CreatedAt())
	assert.Equal(t, at(12), res.UpdatedAt())
}

func TestReservation_IsOwnedBy(t *testing.T) {
	ownerID := uuid.New()
	res := NewReservation("", uuid.New(), ownerID, nil, mustInterval(t, at(9), at(10)), at(8))

	assert.True(t, res.IsOwnedBy(ownerID))
	assert.False(t, res.IsOwnedBy(uuid.New()))
}
