package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidInterval = errors.New("end time must be after start time")

// TimeSlot is the half-open range [start, end) a booking occupies.
// Collision checks treat both endpoints as closed: back-to-back slots
// sharing an endpoint count as overlapping.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidInterval
	}

	return TimeSlot{
		start: start,
		end:   end,
	}, nil
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Equal reports whether two slots cover the exact same window. This is
// the duplicate-slot predicate: it applies regardless of booking status.
func (ts TimeSlot) Equal(other TimeSlot) bool {
	return ts.start.Equal(other.start) && ts.end.Equal(other.end)
}

// Overlaps reports whether ts collides with other under closed-interval
// semantics. The three clauses match the acceptance rule the scheduling
// invariant is stated in:
//   - other's start falls within [ts.start, ts.end]
//   - other's end falls within [ts.start, ts.end]
//   - other fully contains ts
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return within(other.start, ts.start, ts.end) ||
		within(other.end, ts.start, ts.end) ||
		(!other.start.After(ts.start) && !other.end.Before(ts.end))
}

// within is inclusive on both bounds.
func within(t, lo, hi time.Time) bool {
	return !t.Before(lo) && !t.After(hi)
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}

type Notes struct {
	value string
}

func NewNotes(value string) Notes {
	return Notes{value: strings.TrimSpace(value)}
}

func (n Notes) String() string {
	return n.value
}

func (n Notes) IsEmpty() bool {
	return n.value == ""
}
