package request

import (
	"storebook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	StoreID uuid.UUID `json:"store_id" binding:"required"`
	Rating  int32     `json:"rating" binding:"required,min=1,max=5"`
	Content string    `json:"content" binding:"required,max=1000"`
}

func (r *CreateReviewRequest) ToParams() commands.WriteReviewParams {
	return commands.WriteReviewParams{
		StoreID: r.StoreID,
		Rating:  r.Rating,
		Content: r.Content,
	}
}

type UpdateReviewRequest struct {
	Rating  int32  `json:"rating" binding:"required,min=1,max=5"`
	Content string `json:"content" binding:"required,max=1000"`
}
