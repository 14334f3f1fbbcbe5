package queries

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

type StoreQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*StoreView, error)
	GetDetail(ctx context.Context, id uuid.UUID) (*StoreDetailView, error)
	SearchByKeyword(ctx context.Context, keyword string) ([]*StoreView, error)
	SearchByName(ctx context.Context, name string) (*StoreView, error)
}

type StoreViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*StoreView, error)
	FindByName(ctx context.Context, name string) (*StoreView, error)
	FindAllByKeyword(ctx context.Context, keyword string) ([]*StoreView, error)
}

// SearchResultCache is a read-through cache for keyword search results.
// A nil-safe implementation backs it with Redis; failures degrade to
// the database.
type SearchResultCache interface {
	GetSearch(ctx context.Context, keyword string) ([]*StoreView, bool)
	SetSearch(ctx context.Context, keyword string, stores []*StoreView)
}

type storeQueriesImpl struct {
	repo        StoreViewRepo
	reviewRepo  ReviewViewRepo
	searchCache SearchResultCache
}

func NewStoreQueries(repo StoreViewRepo, reviewRepo ReviewViewRepo, searchCache SearchResultCache) StoreQueries {
	return &storeQueriesImpl{
		repo:        repo,
		reviewRepo:  reviewRepo,
		searchCache: searchCache,
	}
}

func (q *storeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*StoreView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *storeQueriesImpl) GetDetail(ctx context.Context, id uuid.UUID) (*StoreDetailView, error) {
	storeView, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := q.reviewRepo.FindByStoreID(ctx, id, reviewPageSize, 0)
	if err != nil {
		return nil, err
	}

	detail := &StoreDetailView{Store: *storeView, Reviews: make([]ReviewView, len(reviews))}
	for i, r := range reviews {
		detail.Reviews[i] = *r
	}
	return detail, nil
}

func (q *storeQueriesImpl) SearchByKeyword(ctx context.Context, keyword string) ([]*StoreView, error) {
	if cached, ok := q.searchCache.GetSearch(ctx, keyword); ok {
		slog.Debug("store search served from cache", "keyword", keyword)
		return cached, nil
	}

	stores, err := q.repo.FindAllByKeyword(ctx, keyword)
	if err != nil {
		return nil, err
	}

	q.searchCache.SetSearch(ctx, keyword, stores)
	return stores, nil
}

func (q *storeQueriesImpl) SearchByName(ctx context.Context, name string) (*StoreView, error) {
	return q.repo.FindByName(ctx, name)
}
