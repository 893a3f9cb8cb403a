package repository

import (
	"context"
	"time"

	"booking-system/internal/domain/user"
	"booking-system/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const createUserSQL = `
INSERT INTO users (id, name, email, password_hash, role)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.pool.QueryRow(ctx, createUserSQL,
		u.ID(), u.Name().Value(), u.Email().Value(), u.PasswordHash(), u.Role().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.ClassifyPgError("failed to create user", err)
	}

	return id, nil
}

const findUserByEmailSQL = `
SELECT id, name, email, password_hash, role, created_at, updated_at
FROM users
WHERE email = $1`

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	var (
		id                   uuid.UUID
		name, mail           string
		passwordHash, role   string
		createdAt, updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, findUserByEmailSQL, email).
		Scan(&id, &name, &mail, &passwordHash, &role, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.ClassifyPgError("failed to find user by email", err)
	}

	nameVO, err := user.NewName(name)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has an invalid name", err)
	}
	emailVO, err := user.NewEmail(mail)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has an invalid email", err)
	}
	roleVO, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored user has an invalid role", err)
	}

	return user.ReconstructUser(id, nameVO, emailVO, passwordHash, roleVO, createdAt, updatedAt), nil
}
