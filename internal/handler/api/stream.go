package api

import (
	"io"

	"booking-system/internal/realtime"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"
)

type StreamHandler struct {
	hub *realtime.Hub
}

func NewStreamHandler(hub *realtime.Hub) *StreamHandler {
	return &StreamHandler{
		hub: hub,
	}
}

// @Summary Stream booking events
// @Description Server-sent events feed of newly created bookings
// @Tags admin
// @Produce text/event-stream
// @Security BearerAuth
// @Success 200
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/bookings/stream [get]
func (h *StreamHandler) StreamBookings(c *gin.Context) {
	events, cancel := h.hub.Subscribe()
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-events:
			if !ok {
				return false
			}
			// Write through the sse codec so payloads survive newlines
			if err := sse.Encode(w, sse.Event{
				Event: event.Type,
				Data:  event.Booking,
			}); err != nil {
				return false
			}
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
