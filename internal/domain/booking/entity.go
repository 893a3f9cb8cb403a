package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("status can only move from pending to accepted or rejected")
	ErrMissingUser       = errors.New("booking requires an owning user")
)

// Booking is a request for a time slot. It is created pending and moved
// to accepted or rejected exactly once by an administrator; the slot
// itself is immutable after creation.
type Booking struct {
	id        uuid.UUID
	userID    uuid.UUID
	slot      TimeSlot
	status    Status
	notes     Notes
	createdAt time.Time
	updatedAt time.Time
}

func NewBooking(userID uuid.UUID, slot TimeSlot, notes Notes) (*Booking, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}

	return &Booking{
		id:     uuid.New(),
		userID: userID,
		slot:   slot,
		status: StatusPending,
		notes:  notes,
	}, nil
}

func ReconstructBooking(
	id, userID uuid.UUID,
	slot TimeSlot,
	status Status,
	notes Notes,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		userID:    userID,
		slot:      slot,
		status:    status,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Decide applies the administrator verdict. It is the only legal status
// mutation: pending -> accepted | rejected. Terminal states admit no
// further transition.
func (b *Booking) Decide(verdict Status) error {
	if !verdict.IsDecision() {
		return ErrInvalidTransition
	}
	if b.status != StatusPending {
		return ErrInvalidTransition
	}

	b.status = verdict
	return nil
}

func (b *Booking) IsPending() bool {
	return b.status == StatusPending
}

func (b *Booking) IsAccepted() bool {
	return b.status == StatusAccepted
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) Slot() TimeSlot       { return b.slot }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) Notes() Notes         { return b.notes }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
