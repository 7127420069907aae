//go:build unit

package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h int) time.Time {
	return time.Date(2026, 3, 10, h, 0, 0, 0, time.UTC)
}

func mustInterval(t *testing.T, from, to time.Time) Interval {
	t.Helper()
	iv, err := NewInterval(from, to)
	require.NoError(t, err)
	return iv
}

func TestNewInterval(t *testing.T) {
	t.Run("valid interval", func(t *testing.T) {
		iv, err := NewInterval(at(9), at(11))
		require.NoError(t, err)
		assert.Equal(t, at(9), iv.From())
		assert.Equal(t, at(11), iv.To())
	})

	t.Run("zero-length interval is valid", func(t *testing.T) {
		_, err := NewInterval(at(9), at(9))
		assert.NoError(t, err)
	})

	t.Run("start after end is rejected", func(t *testing.T) {
		_, err := NewInterval(at(11), at(9))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestInterval_Overlaps(t *testing.T) {
	base := func(t *testing.T) Interval { return mustInterval(t, at(10), at(12)) }

	tests := []struct {
		name  string
		from  time.Time
		to    time.Time
		wants bool
	}{
		{name: "strictly before", from: at(7), to: at(9), wants: false},
		{name: "strictly after", from: at(13), to: at(15), wants: false},
		{name: "touching at start counts as overlap", from: at(8), to: at(10), wants: true},
		{name: "touching at end counts as overlap", from: at(12), to: at(14), wants: true},
		{name: "partial overlap at start", from: at(9), to: at(11), wants: true},
		{name: "partial overlap at end", from: at(11), to: at(13), wants: true},
		{name: "fully contained", from: at(10), to: at(11), wants: true},
		{name: "fully containing", from: at(9), to: at(13), wants: true},
		{name: "identical", from: at(10), to: at(12), wants: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := mustInterval(t, tt.from, tt.to)
			assert.Equal(t, tt.wants, base(t).Overlaps(other))
			// overlap is symmetric
			assert.Equal(t, tt.wants, other.Overlaps(base(t)))
		})
	}
}

func TestInterval_Duration(t *testing.T) {
	iv := mustInterval(t, at(9), at(12))
	assert.Equal(t, 3*time.Hour, iv.Duration())
}

func TestInterval_ToTstzrange(t *testing.T) {
	iv := mustInterval(t, at(9), at(11))
	got := iv.ToTstzrange()
	assert.Contains(t, got, "[")
	assert.Contains(t, got, "]")
}
