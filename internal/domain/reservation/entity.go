package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrReservationTimePast = errors.New("reservation time must be in the future")
)

// Reservation links a customer, a store and a booking time with an
// approval status. Records are never deleted; only the status mutates.
type Reservation struct {
	id              uuid.UUID
	storeID         uuid.UUID
	customerID      uuid.UUID
	reservationTime time.Time
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

func NewReservation(storeID, customerID uuid.UUID, reservationTime time.Time) *Reservation {
	return &Reservation{
		id:              uuid.New(),
		storeID:         storeID,
		customerID:      customerID,
		reservationTime: reservationTime,
		status:          StatusPending,
	}
}

func ReconstructReservation(
	id, storeID, customerID uuid.UUID,
	reservationTime time.Time,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		storeID:         storeID,
		customerID:      customerID,
		reservationTime: reservationTime,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// Approve sets the status unconditionally. Re-approving an already
// approved reservation is allowed; each call re-persists.
func (r *Reservation) Approve() {
	r.status = StatusApproved
}

func (r *Reservation) Reject() {
	r.status = StatusRejected
}

func (r *Reservation) IsApproved() bool {
	return r.status == StatusApproved
}

func (r *Reservation) IsPending() bool {
	return r.status == StatusPending
}

func (r *Reservation) ID() uuid.UUID              { return r.id }
func (r *Reservation) StoreID() uuid.UUID         { return r.storeID }
func (r *Reservation) CustomerID() uuid.UUID      { return r.customerID }
func (r *Reservation) ReservationTime() time.Time { return r.reservationTime }
func (r *Reservation) Status() Status             { return r.status }
func (r *Reservation) CreatedAt() time.Time       { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time       { return r.updatedAt }

// ValidateReservationTime is the future-dated check applied at the edge
// of the system before a reservation is created.
func ValidateReservationTime(t, now time.Time) error {
	if !t.After(now) {
		return ErrReservationTimePast
	}
	return nil
}
