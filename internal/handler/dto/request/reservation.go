package request

import (
	"time"

	"storebook/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	StoreID         uuid.UUID `json:"store_id" binding:"required"`
	ReservationTime time.Time `json:"reservation_time" binding:"required"`
}

// Validate rejects booking times that already passed. The backdating
// check lives at the edge; the booking flow itself accepts any time.
func (r CreateReservationRequest) Validate(now time.Time) error {
	return reservation.ValidateReservationTime(r.ReservationTime, now)
}

type ConfirmReservationRequest struct {
	Phone string `json:"phone" binding:"required"`
}
