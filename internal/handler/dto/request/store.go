package request

import (
	"storebook/internal/usecase/commands"
)

type RegisterStoreRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Location    string `json:"location" binding:"required,max=200"`
	Description string `json:"description" binding:"max=1000"`
	Keyword     string `json:"keyword" binding:"max=100"`
}

func (r *RegisterStoreRequest) ToParams() commands.RegisterStoreParams {
	return commands.RegisterStoreParams{
		Name:        r.Name,
		Location:    r.Location,
		Description: r.Description,
		Keyword:     r.Keyword,
	}
}

type UpdateStoreRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=100"`
	Location    *string `json:"location" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Keyword     *string `json:"keyword" binding:"omitempty,max=100"`
}

func (r *UpdateStoreRequest) ToParams() commands.UpdateStoreParams {
	return commands.UpdateStoreParams{
		Name:        r.Name,
		Location:    r.Location,
		Description: r.Description,
		Keyword:     r.Keyword,
	}
}
