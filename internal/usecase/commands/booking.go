package commands

import (
	"context"
	"log/slog"

	"booking-system/internal/domain/booking"
	"booking-system/internal/infra"
	"booking-system/internal/pkg/errs"
	"booking-system/internal/usecase/queries"

	"github.com/google/uuid"
)

// ConflictProbe answers collision questions against the booking store.
// The repository implements it pool-scoped for creation-time checks and
// hands a transaction-scoped one to DecideFunc for the accept path.
type ConflictProbe interface {
	ExactSlotExists(ctx context.Context, slot booking.TimeSlot) (bool, error)
	AcceptedOverlapExists(ctx context.Context, slot booking.TimeSlot, excludeID uuid.UUID) (bool, error)
}

// DecideFunc runs inside the repository transaction that holds the
// booking row lock. The probe reads through the same transaction, so
// the overlap re-check and the status write are one atomic unit.
type DecideFunc func(b *booking.Booking, probe ConflictProbe) error

type BookingRepository interface {
	ConflictProbe
	Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error)
	Decide(ctx context.Context, id uuid.UUID, fn DecideFunc) (uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookingNotifier receives successfully persisted bookings for fan-out
// to connected observers. Delivery is best-effort.
type BookingNotifier interface {
	BookingCreated(view *queries.BookingView)
}

type CreateBookingInput struct {
	UserID uuid.UUID
	Slot   booking.TimeSlot
	Notes  booking.Notes
}

type BookingCommands interface {
	RequestBooking(ctx context.Context, in CreateBookingInput) (*queries.BookingView, error)
	SetStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingView, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) error
}

// ConflictChecker is the pure decision component deciding whether a
// candidate slot may be persisted or accepted, given existing bookings.
type ConflictChecker struct{}

func NewConflictChecker() *ConflictChecker {
	return &ConflictChecker{}
}

// CheckCreate enforces the two creation rules in order: the
// exact-duplicate-slot rule (any status), then overlap-freedom against
// accepted bookings.
func (c *ConflictChecker) CheckCreate(ctx context.Context, probe ConflictProbe, slot booking.TimeSlot) error {
	duplicate, err := probe.ExactSlotExists(ctx, slot)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if duplicate {
		return errs.ErrDuplicateSlot
	}

	taken, err := probe.AcceptedOverlapExists(ctx, slot, uuid.Nil)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if taken {
		return errs.ErrSlotTaken
	}

	return nil
}

// CheckAccept re-runs the overlap rule for a booking about to be
// accepted, excluding the booking itself from the scan.
func (c *ConflictChecker) CheckAccept(ctx context.Context, probe ConflictProbe, b *booking.Booking) error {
	taken, err := probe.AcceptedOverlapExists(ctx, b.Slot(), b.ID())
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if taken {
		return errs.ErrSlotTaken
	}
	return nil
}

type bookingCommandsImpl struct {
	repo     BookingRepository
	queries  queries.BookingQueries
	checker  *ConflictChecker
	notifier BookingNotifier
	logger   *slog.Logger
}

func NewBookingCommands(
	repo BookingRepository,
	bookingQueries queries.BookingQueries,
	checker *ConflictChecker,
	notifier BookingNotifier,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		repo:     repo,
		queries:  bookingQueries,
		checker:  checker,
		notifier: notifier,
		logger:   logger,
	}
}

// RequestBooking validates, conflict-checks and persists a new pending
// booking, then hands it to the notifier. Two concurrent requests for
// overlapping windows may both land as pending; only the accept
// transition enforces exclusivity.
func (c *bookingCommandsImpl) RequestBooking(ctx context.Context, in CreateBookingInput) (*queries.BookingView, error) {
	if err := c.checker.CheckCreate(ctx, c.repo, in.Slot); err != nil {
		return nil, err
	}

	entity, err := booking.NewBooking(in.UserID, in.Slot, in.Notes)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrMissingFields)
	}

	id, err := c.repo.Create(ctx, entity)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			// Lost the race against an identical slot between check and insert.
			return nil, errs.Mark(err, errs.ErrDuplicateSlot)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		default:
			c.logger.Error("failed to persist booking", "error", err.Error())
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	view, err := c.queries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Broadcast strictly after the successful store write.
	c.notifier.BookingCreated(view)

	return view, nil
}

// SetStatus applies an administrator verdict. The accept path re-checks
// overlap-freedom inside the repository transaction so that two
// overlapping pending bookings can never both end up accepted.
func (c *bookingCommandsImpl) SetStatus(ctx context.Context, id uuid.UUID, status string) (*queries.BookingView, error) {
	verdict := booking.Status(status)
	if !verdict.IsDecision() {
		return nil, errs.ErrInvalidStatus
	}

	updatedID, err := c.repo.Decide(ctx, id, func(b *booking.Booking, probe ConflictProbe) error {
		if err := b.Decide(verdict); err != nil {
			return errs.Mark(err, errs.ErrInvalidStatus)
		}
		if verdict == booking.StatusAccepted {
			return c.checker.CheckAccept(ctx, probe, b)
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}

	view, err := c.queries.GetByID(ctx, updatedID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (c *bookingCommandsImpl) DeleteBooking(ctx context.Context, id uuid.UUID) error {
	if err := c.repo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrBookingNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
