package response

import (
	"storebook/internal/usecase/commands"
)

type RegisterResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

func FromRegisterResult(r *commands.RegisterResult) RegisterResponse {
	return RegisterResponse{
		UserID: r.UserID.String(),
		Email:  r.Email,
		Name:   r.Name,
		Role:   r.Role,
	}
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	UserID       string `json:"user_id"`
	Role         string `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) LoginResponse {
	return LoginResponse{
		AccessToken:  r.TokenPair.AccessToken,
		RefreshToken: r.TokenPair.RefreshToken,
		UserID:       r.UserID.String(),
		Role:         r.Role.String(),
	}
}

type RefreshResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
