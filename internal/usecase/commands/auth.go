package commands

import (
	"context"
	"log/slog"
	"time"

	"booking-system/internal/domain/user"
	"booking-system/internal/infra"
	"booking-system/internal/pkg/errs"
	"booking-system/internal/pkg/jwt"
	"booking-system/internal/pkg/password"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
}

type RegisterInput struct {
	Name     user.Name
	Email    user.Email
	Password user.Password
	Role     user.Role
}

type RegisteredUser struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	UserID    uuid.UUID
	Name      string
	Email     string
	Role      string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*RegisteredUser, error)
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	users         UserRepository
	jwtService    *jwt.Service
	tokenDuration time.Duration
	logger        *slog.Logger
}

func NewAuthCommands(users UserRepository, jwtService *jwt.Service, tokenDuration time.Duration, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{
		users:         users,
		jwtService:    jwtService,
		tokenDuration: tokenDuration,
		logger:        logger,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*RegisteredUser, error) {
	hash, err := password.Hash(in.Password.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	entity := user.NewUser(in.Name, in.Email, hash, in.Role)

	id, err := a.users.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrEmailTaken)
		}
		a.logger.Error("failed to persist user", "error", err.Error())
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &RegisteredUser{
		ID:    id,
		Name:  in.Name.Value(),
		Email: in.Email.Value(),
		Role:  in.Role.String(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	entity, err := a.users.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same failure as a wrong password: never reveal which field was off.
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.Compare(entity.PasswordHash(), plainPassword); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(entity.ID(), entity.Email().Value(), entity.Role())
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign token")
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: time.Now().Add(a.tokenDuration),
		UserID:    entity.ID(),
		Name:      entity.Name().Value(),
		Email:     entity.Email().Value(),
		Role:      entity.Role().String(),
	}, nil
}
