package store

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyStoreName = errors.New("store name must not be empty")

// Store belongs to exactly one merchant. Reservations reference the
// store by foreign key; the store itself holds no reservation list.
type Store struct {
	id          uuid.UUID
	merchantID  uuid.UUID
	name        string
	location    string
	description string
	keyword     string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewStore(merchantID uuid.UUID, name, location, description, keyword string) (*Store, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyStoreName
	}
	return &Store{
		id:          uuid.New(),
		merchantID:  merchantID,
		name:        name,
		location:    location,
		description: description,
		keyword:     keyword,
	}, nil
}

func ReconstructStore(
	id, merchantID uuid.UUID,
	name, location, description, keyword string,
	createdAt, updatedAt time.Time,
) *Store {
	return &Store{
		id:          id,
		merchantID:  merchantID,
		name:        name,
		location:    location,
		description: description,
		keyword:     keyword,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// IsOwnedBy reports whether the merchant may administer this store.
func (s *Store) IsOwnedBy(merchantID uuid.UUID) bool {
	return s.merchantID == merchantID
}

func (s *Store) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyStoreName
	}
	s.name = name
	return nil
}

func (s *Store) SetLocation(location string)       { s.location = location }
func (s *Store) SetDescription(description string) { s.description = description }
func (s *Store) SetKeyword(keyword string)         { s.keyword = keyword }

func (s *Store) ID() uuid.UUID         { return s.id }
func (s *Store) MerchantID() uuid.UUID { return s.merchantID }
func (s *Store) Name() string          { return s.name }
func (s *Store) Location() string      { return s.location }
func (s *Store) Description() string   { return s.description }
func (s *Store) Keyword() string       { return s.keyword }
func (s *Store) CreatedAt() time.Time  { return s.createdAt }
func (s *Store) UpdatedAt() time.Time  { return s.updatedAt }
