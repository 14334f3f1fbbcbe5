package queries

import (
	"context"

	"github.com/google/uuid"
)

// reviewPageSize matches the fixed page length of the store detail and
// review listing endpoints.
const reviewPageSize = 15

type ReviewQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	ListByStore(ctx context.Context, storeID uuid.UUID, page int) ([]*ReviewView, error)
}

type ReviewViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewView, error)
	// FindByStoreID returns reviews newest first.
	FindByStoreID(ctx context.Context, storeID uuid.UUID, limit, offset int32) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	repo ReviewViewRepo
}

func NewReviewQueries(repo ReviewViewRepo) ReviewQueries {
	return &reviewQueriesImpl{repo: repo}
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReviewView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *reviewQueriesImpl) ListByStore(ctx context.Context, storeID uuid.UUID, page int) ([]*ReviewView, error) {
	if page < 0 {
		page = 0
	}
	return q.repo.FindByStoreID(ctx, storeID, reviewPageSize, int32(page)*reviewPageSize)
}
