package readstore

import (
	"context"

	"booking-system/internal/infra"
	"booking-system/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{pool: pool}
}

const findUserViewSQL = `
SELECT id, name, email, role
FROM users
WHERE id = $1`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	var view queries.UserView
	err := r.pool.QueryRow(ctx, findUserViewSQL, id).
		Scan(&view.ID, &view.Name, &view.Email, &view.Role)
	if err != nil {
		return nil, infra.ClassifyPgError("failed to find user", err)
	}
	return &view, nil
}
