//go:build unit

package realtime_test

import (
	"log/slog"
	"testing"

	"booking-system/internal/realtime"
	"booking-system/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubFanOut(t *testing.T) {
	hub := realtime.NewHub(4, slog.Default())

	first, cancelFirst := hub.Subscribe()
	second, cancelSecond := hub.Subscribe()
	defer cancelFirst()
	defer cancelSecond()

	require.Equal(t, 2, hub.SubscriberCount())

	view := &queries.BookingView{ID: uuid.New(), Status: "pending"}
	hub.BookingCreated(view)

	for _, ch := range []<-chan realtime.Event{first, second} {
		event := <-ch
		assert.Equal(t, realtime.EventBookingCreated, event.Type)
		assert.Equal(t, view.ID, event.Booking.ID)
	}
}

func TestHubDropsEventsForSlowSubscriber(t *testing.T) {
	hub := realtime.NewHub(2, slog.Default())

	slow, cancel := hub.Subscribe()
	defer cancel()

	// Publish never blocks, even with the buffer full
	for i := 0; i < 10; i++ {
		hub.Publish(realtime.Event{Type: realtime.EventBookingCreated})
	}

	received := 0
	for {
		select {
		case <-slow:
			received++
		default:
			assert.Equal(t, 2, received)
			return
		}
	}
}

func TestHubUnsubscribe(t *testing.T) {
	hub := realtime.NewHub(4, slog.Default())

	events, cancel := hub.Subscribe()
	cancel()

	assert.Equal(t, 0, hub.SubscriberCount())

	_, open := <-events
	assert.False(t, open)

	// Cancel is idempotent
	cancel()

	// Publishing with no subscribers is a no-op
	hub.Publish(realtime.Event{Type: realtime.EventBookingCreated})
}
