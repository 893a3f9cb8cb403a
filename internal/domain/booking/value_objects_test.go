//go:build unit

package booking_test

import (
	"testing"
	"time"

	"booking-system/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slot(t *testing.T, start, end string) booking.TimeSlot {
	t.Helper()
	base := "2026-03-01T"
	s, err := time.Parse(time.RFC3339, base+start+":00Z")
	require.NoError(t, err)
	e, err := time.Parse(time.RFC3339, base+end+":00Z")
	require.NoError(t, err)
	ts, err := booking.NewTimeSlot(s, e)
	require.NoError(t, err)
	return ts
}

func TestNewTimeSlot(t *testing.T) {
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("valid interval", func(t *testing.T) {
		ts, err := booking.NewTimeSlot(start, start.Add(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, ts.Duration())
	})

	t.Run("end equal to start is rejected", func(t *testing.T) {
		_, err := booking.NewTimeSlot(start, start)
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := booking.NewTimeSlot(start, start.Add(-time.Minute))
		assert.ErrorIs(t, err, booking.ErrInvalidInterval)
	})
}

func TestTimeSlotOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		existing booking.TimeSlot
		incoming booking.TimeSlot
		want     bool
	}{
		{
			name:     "disjoint before",
			existing: slot(t, "10:00", "11:00"),
			incoming: slot(t, "08:00", "09:00"),
			want:     false,
		},
		{
			name:     "disjoint after",
			existing: slot(t, "10:00", "11:00"),
			incoming: slot(t, "12:00", "13:00"),
			want:     false,
		},
		{
			name:     "start falls inside",
			existing: slot(t, "10:00", "11:00"),
			incoming: slot(t, "10:30", "11:30"),
			want:     true,
		},
		{
			name:     "end falls inside",
			existing: slot(t, "10:00", "11:00"),
			incoming: slot(t, "09:30", "10:30"),
			want:     true,
		},
		{
			name:     "incoming contains existing",
			existing: slot(t, "10:00", "11:00"),
			incoming: slot(t, "09:00", "12:00"),
			want:     true,
		},
		{
			name:     "existing contains incoming",
			existing: slot(t, "10:00", "11:00"),
			incoming: slot(t, "10:15", "10:45"),
			want:     true,
		},
		{
			name:     "same window",
			existing: slot(t, "10:00", "11:00"),
			incoming: slot(t, "10:00", "11:00"),
			want:     true,
		},
		{
			// Boundaries are closed: back-to-back slots sharing an
			// endpoint collide.
			name:     "touching at existing end",
			existing: slot(t, "10:00", "11:00"),
			incoming: slot(t, "11:00", "12:00"),
			want:     true,
		},
		{
			name:     "touching at existing start",
			existing: slot(t, "10:00", "11:00"),
			incoming: slot(t, "09:00", "10:00"),
			want:     true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.existing.Overlaps(tc.incoming))
			// Overlap is symmetric
			assert.Equal(t, tc.want, tc.incoming.Overlaps(tc.existing))
		})
	}
}

func TestTimeSlotEqual(t *testing.T) {
	a := slot(t, "10:00", "11:00")
	b := slot(t, "10:00", "11:00")
	c := slot(t, "10:00", "11:30")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestNotes(t *testing.T) {
	assert.True(t, booking.NewNotes("   ").IsEmpty())
	assert.Equal(t, "bring projector", booking.NewNotes("  bring projector ").String())
}

func TestStatus(t *testing.T) {
	assert.True(t, booking.StatusPending.IsValid())
	assert.False(t, booking.Status("cancelled").IsValid())

	assert.True(t, booking.StatusAccepted.IsDecision())
	assert.True(t, booking.StatusRejected.IsDecision())
	assert.False(t, booking.StatusPending.IsDecision())
	assert.False(t, booking.Status("cancelled").IsDecision())
}
