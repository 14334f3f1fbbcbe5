package response

import (
	"time"

	"storebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type StoreResponse struct {
	ID          uuid.UUID `json:"id"`
	MerchantID  uuid.UUID `json:"merchant_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Keyword     string    `json:"keyword"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromStoreView(v *queries.StoreView) *StoreResponse {
	return &StoreResponse{
		ID:          v.ID,
		MerchantID:  v.MerchantID,
		Name:        v.Name,
		Location:    v.Location,
		Description: v.Description,
		Keyword:     v.Keyword,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromStoreViews(views []*queries.StoreView) []*StoreResponse {
	res := make([]*StoreResponse, len(views))
	for i, v := range views {
		res[i] = FromStoreView(v)
	}
	return res
}

type StoreDetailResponse struct {
	Store   *StoreResponse    `json:"store"`
	Reviews []*ReviewResponse `json:"reviews"`
}

func FromStoreDetailView(v *queries.StoreDetailView) *StoreDetailResponse {
	reviews := make([]*ReviewResponse, len(v.Reviews))
	for i := range v.Reviews {
		reviews[i] = FromReviewView(&v.Reviews[i])
	}
	return &StoreDetailResponse{
		Store:   FromStoreView(&v.Store),
		Reviews: reviews,
	}
}
