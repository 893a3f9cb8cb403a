package request

import (
	"booking-system/internal/domain/user"
	"booking-system/internal/usecase/commands"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

func (r RegisterRequest) ToInput() (commands.RegisterInput, error) {
	name, err := user.NewName(r.Name)
	if err != nil {
		return commands.RegisterInput{}, err
	}
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return commands.RegisterInput{}, err
	}
	pass, err := user.NewPassword(r.Password)
	if err != nil {
		return commands.RegisterInput{}, err
	}
	role, err := user.NewRole(r.Role)
	if err != nil {
		return commands.RegisterInput{}, err
	}

	return commands.RegisterInput{
		Name:     name,
		Email:    email,
		Password: pass,
		Role:     role,
	}, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
