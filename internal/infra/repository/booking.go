package repository

import (
	"context"
	"time"

	"booking-system/internal/domain/booking"
	"booking-system/internal/infra"
	"booking-system/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the common surface of pgxpool.Pool and pgx.Tx the queries run
// against, so the same probe works pool-scoped and transaction-scoped.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const createBookingSQL = `
INSERT INTO bookings (id, user_id, start_time, end_time, status, notes)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id`

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	var notes *string
	if !b.Notes().IsEmpty() {
		v := b.Notes().String()
		notes = &v
	}

	var id uuid.UUID
	err := r.pool.QueryRow(ctx, createBookingSQL,
		b.ID(), b.UserID(), b.Slot().Start(), b.Slot().End(), b.Status().String(), notes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.ClassifyPgError("failed to create booking", err)
	}

	return id, nil
}

const exactSlotSQL = `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE start_time = $1 AND end_time = $2
)`

// The overlap scan keeps the legacy engine's exact clause structure:
// BETWEEN is inclusive on both bounds, so touching endpoints collide.
const acceptedOverlapSQL = `
SELECT EXISTS (
    SELECT 1 FROM bookings
    WHERE status = 'accepted'
      AND id <> $3
      AND (
           start_time BETWEEN $1 AND $2
        OR end_time BETWEEN $1 AND $2
        OR (start_time <= $1 AND end_time >= $2)
      )
)`

func (r *BookingRepository) ExactSlotExists(ctx context.Context, slot booking.TimeSlot) (bool, error) {
	return probe{db: r.pool}.ExactSlotExists(ctx, slot)
}

func (r *BookingRepository) AcceptedOverlapExists(ctx context.Context, slot booking.TimeSlot, excludeID uuid.UUID) (bool, error) {
	return probe{db: r.pool}.AcceptedOverlapExists(ctx, slot, excludeID)
}

// probe satisfies commands.ConflictProbe over any DBTX.
type probe struct {
	db DBTX
}

func (p probe) ExactSlotExists(ctx context.Context, slot booking.TimeSlot) (bool, error) {
	var exists bool
	err := p.db.QueryRow(ctx, exactSlotSQL, slot.Start(), slot.End()).Scan(&exists)
	if err != nil {
		return false, infra.ClassifyPgError("failed to probe for duplicate slot", err)
	}
	return exists, nil
}

func (p probe) AcceptedOverlapExists(ctx context.Context, slot booking.TimeSlot, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := p.db.QueryRow(ctx, acceptedOverlapSQL, slot.Start(), slot.End(), excludeID).Scan(&exists)
	if err != nil {
		return false, infra.ClassifyPgError("failed to probe for accepted overlap", err)
	}
	return exists, nil
}

// No status filter here: a pending row that a concurrent transaction is
// accepting must be locked too, so we wait on it and see its final status.
const lockOverlappingSQL = `
SELECT status FROM bookings
WHERE id <> $3
  AND (
       start_time BETWEEN $1 AND $2
    OR end_time BETWEEN $1 AND $2
    OR (start_time <= $1 AND end_time >= $2)
  )
FOR UPDATE`

// txProbe runs the overlap scan with row locks so that two transactions
// accepting overlapping bookings serialize on the shared rows. Statuses
// are evaluated only after every lock is granted.
type txProbe struct {
	tx pgx.Tx
}

func (p txProbe) ExactSlotExists(ctx context.Context, slot booking.TimeSlot) (bool, error) {
	return probe{db: p.tx}.ExactSlotExists(ctx, slot)
}

func (p txProbe) AcceptedOverlapExists(ctx context.Context, slot booking.TimeSlot, excludeID uuid.UUID) (bool, error) {
	rows, err := p.tx.Query(ctx, lockOverlappingSQL, slot.Start(), slot.End(), excludeID)
	if err != nil {
		return false, infra.ClassifyPgError("failed to lock overlapping bookings", err)
	}
	defer rows.Close()

	accepted := false
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			return false, infra.ClassifyPgError("failed to scan overlapping booking", err)
		}
		if status == booking.StatusAccepted.String() {
			accepted = true
		}
	}
	if err := rows.Err(); err != nil {
		return false, infra.ClassifyPgError("failed to lock overlapping bookings", err)
	}
	return accepted, nil
}

const lockBookingSQL = `
SELECT id, user_id, start_time, end_time, status, notes, created_at, updated_at
FROM bookings
WHERE id = $1
FOR UPDATE`

const updateStatusSQL = `
UPDATE bookings SET status = $2, updated_at = now() WHERE id = $1`

// Decide locks the booking row, runs fn with a transaction-scoped
// conflict probe, and persists the new status. Lock, re-check and write
// commit or roll back as one unit.
func (r *BookingRepository) Decide(ctx context.Context, id uuid.UUID, fn commands.DecideFunc) (uuid.UUID, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	entity, err := scanBookingRow(tx.QueryRow(ctx, lockBookingSQL, id))
	if err != nil {
		return uuid.Nil, err
	}

	if err := fn(entity, txProbe{tx: tx}); err != nil {
		return uuid.Nil, err
	}

	if _, err := tx.Exec(ctx, updateStatusSQL, entity.ID(), entity.Status().String()); err != nil {
		return uuid.Nil, infra.ClassifyPgError("failed to update booking status", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to commit status update", err)
	}

	return entity.ID(), nil
}

const deleteBookingSQL = `DELETE FROM bookings WHERE id = $1`

// Delete is not idempotent: deleting an absent booking reports NOT_FOUND.
func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, deleteBookingSQL, id)
	if err != nil {
		return infra.ClassifyPgError("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func scanBookingRow(row pgx.Row) (*booking.Booking, error) {
	var (
		id, userID           uuid.UUID
		startTime, endTime   time.Time
		status               string
		notes                *string
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &userID, &startTime, &endTime, &status, &notes, &createdAt, &updatedAt); err != nil {
		return nil, infra.ClassifyPgError("failed to load booking", err)
	}

	slot, err := booking.NewTimeSlot(startTime, endTime)
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has an invalid interval", err)
	}

	notesValue := ""
	if notes != nil {
		notesValue = *notes
	}

	return booking.ReconstructBooking(
		id, userID, slot,
		booking.Status(status),
		booking.NewNotes(notesValue),
		createdAt, updatedAt,
	), nil
}
