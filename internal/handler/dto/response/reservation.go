package response

import (
	"time"

	"storebook/internal/usecase/commands"
	"storebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingSummaryResponse struct {
	ReservationID   uuid.UUID `json:"reservation_id"`
	StoreName       string    `json:"store_name"`
	Location        string    `json:"location"`
	CustomerName    string    `json:"customer_name"`
	ReservationTime time.Time `json:"reservation_time"`
	Status          string    `json:"status"`
}

func FromBookingSummary(s *commands.BookingSummary) *BookingSummaryResponse {
	return &BookingSummaryResponse{
		ReservationID:   s.ReservationID,
		StoreName:       s.StoreName,
		Location:        s.Location,
		CustomerName:    s.CustomerName,
		ReservationTime: s.ReservationTime,
		Status:          "PENDING",
	}
}

type BookingConfirmationResponse struct {
	CustomerName    string    `json:"customer_name"`
	StoreName       string    `json:"store_name"`
	ReservationTime time.Time `json:"reservation_time"`
}

func FromBookingConfirmation(c *commands.BookingConfirmation) *BookingConfirmationResponse {
	return &BookingConfirmationResponse{
		CustomerName:    c.CustomerName,
		StoreName:       c.StoreName,
		ReservationTime: c.ReservationTime,
	}
}

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	StoreID         uuid.UUID `json:"store_id"`
	StoreName       string    `json:"store_name"`
	Location        string    `json:"location"`
	CustomerID      uuid.UUID `json:"customer_id"`
	CustomerName    string    `json:"customer_name"`
	ReservationTime time.Time `json:"reservation_time"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              v.ID,
		StoreID:         v.StoreID,
		StoreName:       v.StoreName,
		Location:        v.Location,
		CustomerID:      v.CustomerID,
		CustomerName:    v.CustomerName,
		ReservationTime: v.ReservationTime,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

type ReservationListResponse struct {
	ID              uuid.UUID `json:"id"`
	StoreID         uuid.UUID `json:"store_id"`
	StoreName       string    `json:"store_name"`
	CustomerName    string    `json:"customer_name"`
	ReservationTime time.Time `json:"reservation_time"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromReservationListItem(v *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:              v.ID,
		StoreID:         v.StoreID,
		StoreName:       v.StoreName,
		CustomerName:    v.CustomerName,
		ReservationTime: v.ReservationTime,
		Status:          v.Status,
		CreatedAt:       v.CreatedAt,
	}
}
