package request

import (
	"time"

	"booking-system/internal/domain/booking"
	"booking-system/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Notes     *string   `json:"notes,omitempty"`
}

func (r CreateBookingRequest) ToInput(userID uuid.UUID) (commands.CreateBookingInput, error) {
	slot, err := booking.NewTimeSlot(r.StartTime, r.EndTime)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}

	notes := booking.NewNotes("")
	if r.Notes != nil {
		notes = booking.NewNotes(*r.Notes)
	}

	return commands.CreateBookingInput{
		UserID: userID,
		Slot:   slot,
		Notes:  notes,
	}, nil
}

type UpdateBookingStatusRequest struct {
	// Exactly "accepted" or "rejected"; anything else is rejected by the
	// workflow guard.
	Status string `json:"status" binding:"required"`
}
