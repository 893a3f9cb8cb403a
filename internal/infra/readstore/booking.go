package readstore

import (
	"context"

	"booking-system/internal/infra"
	"booking-system/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingReadStore struct {
	pool *pgxpool.Pool
}

func NewBookingReadStore(pool *pgxpool.Pool) *BookingReadStore {
	return &BookingReadStore{pool: pool}
}

const bookingViewColumns = `
    b.id, b.user_id, b.start_time, b.end_time, b.status, b.notes,
    b.created_at, b.updated_at, u.name, u.email`

const findBookingByIDSQL = `
SELECT` + bookingViewColumns + `
FROM bookings b
JOIN users u ON u.id = b.user_id
WHERE b.id = $1`

// created_at DESC is a listing contract: dashboards render the most
// recent request first.
const findAllBookingsSQL = `
SELECT` + bookingViewColumns + `
FROM bookings b
JOIN users u ON u.id = b.user_id
ORDER BY b.created_at DESC`

const findBookingsByUserSQL = `
SELECT` + bookingViewColumns + `
FROM bookings b
JOIN users u ON u.id = b.user_id
WHERE b.user_id = $1
ORDER BY b.created_at DESC`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	view, err := scanBookingView(r.pool.QueryRow(ctx, findBookingByIDSQL, id))
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (r *BookingReadStore) FindAll(ctx context.Context) ([]*queries.BookingView, error) {
	rows, err := r.pool.Query(ctx, findAllBookingsSQL)
	if err != nil {
		return nil, infra.ClassifyPgError("failed to list bookings", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.BookingView, error) {
	rows, err := r.pool.Query(ctx, findBookingsByUserSQL, userID)
	if err != nil {
		return nil, infra.ClassifyPgError("failed to list bookings by user", err)
	}
	defer rows.Close()

	return collectBookingViews(rows)
}

func collectBookingViews(rows pgx.Rows) ([]*queries.BookingView, error) {
	views := make([]*queries.BookingView, 0)
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.ClassifyPgError("failed to read booking rows", err)
	}
	return views, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var view queries.BookingView
	err := row.Scan(
		&view.ID, &view.UserID, &view.StartTime, &view.EndTime, &view.Status,
		&view.Notes, &view.CreatedAt, &view.UpdatedAt, &view.Name, &view.Email,
	)
	if err != nil {
		return nil, infra.ClassifyPgError("failed to scan booking view", err)
	}
	return &view, nil
}
