package response

import (
	"booking-system/internal/usecase/commands"

	"github.com/google/uuid"
)

type RegisterResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func FromRegisteredUser(u *commands.RegisteredUser) *RegisterResponse {
	return &RegisterResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}

type LoginResponse struct {
	Token string    `json:"token"`
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token: r.Token,
		ID:    r.UserID,
		Name:  r.Name,
		Email: r.Email,
		Role:  r.Role,
	}
}
