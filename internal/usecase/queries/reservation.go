package queries

import (
	"context"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByStore(ctx context.Context, storeID uuid.UUID) ([]*ReservationListItem, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReservationListItem, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindByStoreID(ctx context.Context, storeID uuid.UUID) ([]*ReservationListItem, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) ListByStore(ctx context.Context, storeID uuid.UUID) ([]*ReservationListItem, error) {
	return q.repo.FindByStoreID(ctx, storeID)
}

func (q *reservationQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*ReservationListItem, error) {
	return q.repo.FindByCustomerID(ctx, customerID)
}
