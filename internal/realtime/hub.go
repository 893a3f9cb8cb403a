package realtime

import (
	"log/slog"
	"sync"

	"booking-system/internal/usecase/queries"
)

const EventBookingCreated = "booking_created"

// Event is the payload fanned out to connected observers. It carries
// the full created-record view so dashboards can render without a
// follow-up fetch.
type Event struct {
	Type    string              `json:"type"`
	Booking *queries.BookingView `json:"booking"`
}

// Hub is an in-process publish/subscribe channel with at-most-once,
// best-effort delivery. Publish never blocks: a subscriber whose buffer
// is full misses the event. Observer disconnects are handled by the
// transport layer calling the unsubscribe func.
type Hub struct {
	mu          sync.Mutex
	subscribers map[chan Event]struct{}
	buffer      int
	logger      *slog.Logger
}

func NewHub(buffer int, logger *slog.Logger) *Hub {
	if buffer <= 0 {
		buffer = 1
	}
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
		buffer:      buffer,
		logger:      logger,
	}
}

// Subscribe registers an observer and returns its event channel along
// with an unsubscribe func. The channel is closed on unsubscribe.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, h.buffer)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, ch)
			h.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// Publish fans the event out to every current subscriber without
// waiting for any of them.
func (h *Hub) Publish(event Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			h.logger.Warn("dropping realtime event for slow subscriber",
				"type", event.Type)
		}
	}
}

// BookingCreated publishes a created-booking event. It satisfies the
// command layer's notifier port.
func (h *Hub) BookingCreated(view *queries.BookingView) {
	h.Publish(Event{
		Type:    EventBookingCreated,
		Booking: view,
	})
}

// SubscriberCount is used by tests and the health endpoint.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}
