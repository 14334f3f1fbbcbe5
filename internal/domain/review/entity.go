package review

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
	ErrEmptyContent     = errors.New("review content must not be empty")
)

type Review struct {
	id         uuid.UUID
	storeID    uuid.UUID
	customerID uuid.UUID
	rating     int32
	content    string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReview(storeID, customerID uuid.UUID, rating int32, content string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrRatingOutOfRange
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyContent
	}
	return &Review{
		id:         uuid.New(),
		storeID:    storeID,
		customerID: customerID,
		rating:     rating,
		content:    content,
	}, nil
}

func ReconstructReview(
	id, storeID, customerID uuid.UUID,
	rating int32,
	content string,
	createdAt, updatedAt time.Time,
) *Review {
	return &Review{
		id:         id,
		storeID:    storeID,
		customerID: customerID,
		rating:     rating,
		content:    content,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Review) Revise(rating int32, content string) error {
	if rating < 1 || rating > 5 {
		return ErrRatingOutOfRange
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyContent
	}
	r.rating = rating
	r.content = content
	return nil
}

func (r *Review) IsWrittenBy(customerID uuid.UUID) bool {
	return r.customerID == customerID
}

func (r *Review) ID() uuid.UUID         { return r.id }
func (r *Review) StoreID() uuid.UUID    { return r.storeID }
func (r *Review) CustomerID() uuid.UUID { return r.customerID }
func (r *Review) Rating() int32         { return r.rating }
func (r *Review) Content() string       { return r.content }
func (r *Review) CreatedAt() time.Time  { return r.createdAt }
func (r *Review) UpdatedAt() time.Time  { return r.updatedAt }
