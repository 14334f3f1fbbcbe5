package commands

import (
	"context"
	"time"

	"storebook/internal/domain/reservation"
	"storebook/internal/domain/review"
	"storebook/internal/domain/store"
	"storebook/internal/domain/user"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type StoreSnapshot struct {
	ID         uuid.UUID
	MerchantID uuid.UUID
	Name       string
	Location   string
}

type CustomerSnapshot struct {
	ID    uuid.UUID
	Name  string
	Phone string
}

type ReservationSnapshot struct {
	ID              uuid.UUID
	StoreID         uuid.UUID
	CustomerID      uuid.UUID
	ReservationTime time.Time
	Status          reservation.Status
}

type ReviewSnapshot struct {
	ID              uuid.UUID
	StoreID         uuid.UUID
	StoreMerchantID uuid.UUID
	CustomerID      uuid.UUID
	Rating          int32
	Content         string
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	// FindLatestByCustomerID resolves "the customer's reservation" to the
	// most recently created record when several exist.
	FindLatestByCustomerID(ctx context.Context, customerID uuid.UUID) (*ReservationSnapshot, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error
}

type StoreRepository interface {
	Create(ctx context.Context, s *store.Store) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*StoreSnapshot, error)
	FindEntityByID(ctx context.Context, id uuid.UUID) (*store.Store, error)
	Update(ctx context.Context, s *store.Store) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
	FindCustomerByPhone(ctx context.Context, phone string) (*CustomerSnapshot, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReviewSnapshot, error)
	Update(ctx context.Context, r *review.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReservationEvent is handed to the message broker when a merchant
// decides on a pending booking.
type ReservationEvent struct {
	ReservationID   uuid.UUID `json:"reservation_id"`
	StoreID         uuid.UUID `json:"store_id"`
	CustomerID      uuid.UUID `json:"customer_id"`
	Status          string    `json:"status"`
	ReservationTime time.Time `json:"reservation_time"`
	DecidedAt       time.Time `json:"decided_at"`
}

// EventPublisher delivery is best effort: a publish failure is logged
// by the caller and never fails the state transition.
type EventPublisher interface {
	PublishReservationDecided(ctx context.Context, event ReservationEvent) error
}
