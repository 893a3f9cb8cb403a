//go:build unit

package booking_test

import (
	"testing"
	"time"

	"booking-system/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingBooking(t *testing.T) *booking.Booking {
	t.Helper()
	b, err := booking.NewBooking(uuid.New(), slot(t, "10:00", "11:00"), booking.NewNotes("standup"))
	require.NoError(t, err)
	return b
}

func TestNewBooking(t *testing.T) {
	t.Run("created pending with generated id", func(t *testing.T) {
		b := newPendingBooking(t)

		assert.NotEqual(t, uuid.Nil, b.ID())
		assert.True(t, b.IsPending())
		assert.Equal(t, "standup", b.Notes().String())
	})

	t.Run("requires an owning user", func(t *testing.T) {
		_, err := booking.NewBooking(uuid.Nil, slot(t, "10:00", "11:00"), booking.NewNotes(""))
		assert.ErrorIs(t, err, booking.ErrMissingUser)
	})
}

func TestBookingDecide(t *testing.T) {
	t.Run("pending to accepted", func(t *testing.T) {
		b := newPendingBooking(t)

		require.NoError(t, b.Decide(booking.StatusAccepted))
		assert.True(t, b.IsAccepted())
	})

	t.Run("pending to rejected", func(t *testing.T) {
		b := newPendingBooking(t)

		require.NoError(t, b.Decide(booking.StatusRejected))
		assert.Equal(t, booking.StatusRejected, b.Status())
	})

	t.Run("pending is not a verdict", func(t *testing.T) {
		b := newPendingBooking(t)

		assert.ErrorIs(t, b.Decide(booking.StatusPending), booking.ErrInvalidTransition)
		assert.True(t, b.IsPending())
	})

	t.Run("unknown status is not a verdict", func(t *testing.T) {
		b := newPendingBooking(t)

		assert.ErrorIs(t, b.Decide(booking.Status("cancelled")), booking.ErrInvalidTransition)
	})

	t.Run("terminal states admit no further transition", func(t *testing.T) {
		for _, terminal := range []booking.Status{booking.StatusAccepted, booking.StatusRejected} {
			b := newPendingBooking(t)
			require.NoError(t, b.Decide(terminal))

			assert.ErrorIs(t, b.Decide(booking.StatusAccepted), booking.ErrInvalidTransition)
			assert.ErrorIs(t, b.Decide(booking.StatusRejected), booking.ErrInvalidTransition)
			assert.Equal(t, terminal, b.Status())
		}
	})
}

func TestReconstructBooking(t *testing.T) {
	id := uuid.New()
	userID := uuid.New()
	created := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)

	b := booking.ReconstructBooking(id, userID, slot(t, "10:00", "11:00"),
		booking.StatusAccepted, booking.NewNotes(""), created, created)

	assert.Equal(t, id, b.ID())
	assert.Equal(t, userID, b.UserID())
	assert.True(t, b.IsAccepted())
	assert.Equal(t, created, b.CreatedAt())
}
