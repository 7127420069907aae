package reservation

import (
	"fmt"
	"time"

	"room-booking-api/internal/pkg/errs"
)

var ErrInvalidInterval = errs.New("reservation start time cannot be later than its end time")

// Interval is a closed time range [from, to]. Both endpoints belong to the
// reservation, so two intervals that merely touch at an endpoint occupy a
// shared instant and therefore overlap. A zero-length interval (from == to)
// is valid.
type Interval struct {
	from time.Time
	to   time.Time
}

func NewInterval(from, to time.Time) (Interval, error) {
	if from.After(to) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{from: from, to: to}, nil
}

func (iv Interval) From() time.Time {
	return iv.from
}

func (iv Interval) To() time.Time {
	return iv.to
}

func (iv Interval) Duration() time.Duration {
	return iv.to.Sub(iv.from)
}

// Overlaps reports whether the two intervals share at least one instant.
// The comparison is boundary-inclusive: iv.to == other.from counts as an
// overlap, not as adjacency.
func (iv Interval) Overlaps(other Interval) bool {
	return !(iv.to.Before(other.from) || iv.from.After(other.to))
}

// ToTstzrange renders the interval as an inclusive-bounds Postgres range
// literal, matching the exclusion constraint on the reservations table.
func (iv Interval) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s]", iv.from.Format(time.RFC3339Nano), iv.to.Format(time.RFC3339Nano))
}
