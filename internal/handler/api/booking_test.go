//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"booking-system/internal/handler/api"
	resdto "booking-system/internal/handler/dto/response"
	"booking-system/internal/pkg/errs"
	"booking-system/internal/usecase/queries"
	"booking-system/tests/common/httptest"
	commandsmock "booking-system/tests/mock/commands"
	queriesmock "booking-system/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Stand in for the auth middleware
	authed := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.userID)
			h(c)
		}
	}

	s.router.POST("/bookings", authed(s.handler.CreateBooking))
	s.router.GET("/bookings", authed(s.handler.ListMyBookings))
	s.router.GET("/admin/bookings", authed(s.handler.ListAllBookings))
	s.router.PATCH("/admin/bookings/:id/status", authed(s.handler.UpdateBookingStatus))
	s.router.DELETE("/admin/bookings/:id", authed(s.handler.DeleteBooking))
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) sampleView(status string) *queries.BookingView {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return &queries.BookingView{
		ID:        uuid.New(),
		UserID:    s.userID,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Status:    status,
		Name:      "Test User",
		Email:     "test@example.com",
	}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"
	body := map[string]any{
		"startTime": "2026-03-02T10:00:00Z",
		"endTime":   "2026-03-02T11:00:00Z",
		"notes":     "standup",
	}

	s.Run("success: returns 201 Created with the stored view", func() {
		view := s.sampleView("pending")
		s.mockCommands.EXPECT().RequestBooking(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 on missing fields", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"startTime": "2026-03-02T10:00:00Z"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Missing required fields")
	})

	s.Run("error: 400 on inverted interval", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{
			"startTime": "2026-03-02T11:00:00Z",
			"endTime":   "2026-03-02T10:00:00Z",
		}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "End time must be after start time")
	})

	s.Run("error: 409 on exact duplicate slot", func() {
		s.mockCommands.EXPECT().RequestBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrDuplicateSlot).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "This exact time slot is already requested")
	})

	s.Run("error: 409 on accepted overlap", func() {
		s.mockCommands.EXPECT().RequestBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrSlotTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "This time slot is already booked")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockCommands.EXPECT().RequestBooking(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: body carries the shared error envelope", func() {
		s.mockCommands.EXPECT().RequestBooking(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrSlotTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var envelope struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &envelope))
		s.Equal("This time slot is already booked", envelope.Error.Message)
	})
}

func (s *BookingHandlerTestSuite) TestListMyBookings() {
	s.Run("success: returns only the caller's bookings", func() {
		views := []*queries.BookingView{s.sampleView("pending"), s.sampleView("accepted")}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: empty list encodes as JSON array", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq("[]", rec.Body.String())
	})
}

func (s *BookingHandlerTestSuite) TestListAllBookings() {
	views := []*queries.BookingView{s.sampleView("accepted")}
	s.mockQueries.EXPECT().ListAll(gomock.Any()).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, "")

	var response []resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Len(response, 1)
	s.Equal("test@example.com", response[0].Email)
}

func (s *BookingHandlerTestSuite) TestUpdateBookingStatus() {
	id := uuid.New()
	url := "/admin/bookings/" + id.String() + "/status"

	s.Run("success: returns the updated view", func() {
		view := s.sampleView("accepted")
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), id, "accepted").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "accepted"}, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("accepted", response.Status)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/admin/bookings/not-a-uuid/status", map[string]any{"status": "accepted"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 400 on invalid target status", func() {
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), id, "cancelled").
			Return(nil, errs.ErrInvalidStatus).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "cancelled"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Status must be either accepted or rejected")
	})

	s.Run("error: 404 on unknown booking", func() {
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), id, "accepted").
			Return(nil, errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "accepted"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 409 when acceptance loses to an accepted overlap", func() {
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), id, "accepted").
			Return(nil, errs.ErrSlotTaken).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]any{"status": "accepted"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "This time slot is already booked")
	})
}

func (s *BookingHandlerTestSuite) TestDeleteBooking() {
	id := uuid.New()
	url := "/admin/bookings/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 on unknown booking", func() {
		s.mockCommands.EXPECT().DeleteBooking(gomock.Any(), id).
			Return(errs.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
