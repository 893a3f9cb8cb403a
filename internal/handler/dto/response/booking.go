package response

import (
	"time"

	"booking-system/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingResponse keeps the persisted representation the legacy API
// exposed, plus the joined user display fields.
type BookingResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:        view.ID,
		UserID:    view.UserID,
		StartTime: view.StartTime,
		EndTime:   view.EndTime,
		Status:    view.Status,
		Notes:     view.Notes,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
		Name:      view.Name,
		Email:     view.Email,
	}
}

func FromBookingViews(views []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(views))
	for i, view := range views {
		out[i] = FromBookingView(view)
	}
	return out
}
