//go:build unit

package reservation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRoomAvailable(t *testing.T) {
	existingID := uuid.New()
	existing := []BookedInterval{
		{ReservationID: existingID, From: at(10), To: at(12)},
	}

	t.Run("empty calendar is always available", func(t *testing.T) {
		assert.True(t, IsRoomAvailable(nil, mustInterval(t, at(9), at(11)), uuid.Nil))
	})

	t.Run("gap before existing booking", func(t *testing.T) {
		assert.True(t, IsRoomAvailable(existing, mustInterval(t, at(7), at(9)), uuid.Nil))
	})

	t.Run("touching endpoint is not available", func(t *testing.T) {
		assert.False(t, IsRoomAvailable(existing, mustInterval(t, at(8), at(10)), uuid.Nil))
		assert.False(t, IsRoomAvailable(existing, mustInterval(t, at(12), at(14)), uuid.Nil))
	})

	t.Run("overlapping booking is not available", func(t *testing.T) {
		assert.False(t, IsRoomAvailable(existing, mustInterval(t, at(11), at(13)), uuid.Nil))
	})

	t.Run("excluded reservation does not block itself", func(t *testing.T) {
		assert.True(t, IsRoomAvailable(existing, mustInterval(t, at(10), at(12)), existingID))
		assert.True(t, IsRoomAvailable(existing, mustInterval(t, at(11), at(13)), existingID))
	})

	t.Run("exclusion leaves other bookings in force", func(t *testing.T) {
		other := append(existing, BookedInterval{ReservationID: uuid.New(), From: at(14), To: at(16)})
		assert.False(t, IsRoomAvailable(other, mustInterval(t, at(11), at(15)), existingID))
	})
}

func TestCheckAvailability(t *testing.T) {
	existing := []BookedInterval{
		{ReservationID: uuid.New(), From: at(10), To: at(12)},
	}

	t.Run("returns the validated interval", func(t *testing.T) {
		iv, err := CheckAvailability(existing, at(7), at(9), uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, at(7), iv.From())
		assert.Equal(t, at(9), iv.To())
	})

	t.Run("inverted bounds fail before the overlap scan", func(t *testing.T) {
		_, err := CheckAvailability(existing, at(9), at(7), uuid.Nil)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("occupied room is rejected", func(t *testing.T) {
		_, err := CheckAvailability(existing, at(11), at(13), uuid.Nil)
		assert.ErrorIs(t, err, ErrRoomOccupied)
	})
}

func TestCheckOwnership(t *testing.T) {
	owner := uuid.New()

	assert.NoError(t, CheckOwnership(owner, owner))
	assert.ErrorIs(t, CheckOwnership(uuid.New(), owner), ErrNotOwner)
}
