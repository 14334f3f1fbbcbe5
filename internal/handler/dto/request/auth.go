package request

import (
	"storebook/internal/domain/user"
	"storebook/internal/usecase/commands"
)

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,max=100"`
	Phone    string `json:"phone" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=customer merchant"`
}

func (r *RegisterRequest) ToParams() (commands.RegisterParams, user.Role, error) {
	role, err := user.NewRole(r.Role)
	if err != nil {
		return commands.RegisterParams{}, "", err
	}
	return commands.RegisterParams{
		Email:    r.Email,
		Password: r.Password,
		Name:     r.Name,
		Phone:    r.Phone,
	}, role, nil
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
