package errs

import "errors"

// Domain-specific sentinel errors for the usecase layers
var (
	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidInterval = errors.New("end time must be after start time")
	ErrDuplicateSlot   = errors.New("exact time slot already requested")
	ErrSlotTaken       = errors.New("time slot already booked")
	ErrInvalidStatus   = errors.New("invalid status transition")

	// User / auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
