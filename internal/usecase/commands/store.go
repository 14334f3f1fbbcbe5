package commands

import (
	"context"
	"log/slog"

	"storebook/internal/domain/store"
	"storebook/internal/infra"
	"storebook/internal/pkg/errs"
	"storebook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var ErrInvalidStore = errs.New("invalid store")

type RegisterStoreParams struct {
	Name        string
	Location    string
	Description string
	Keyword     string
}

// UpdateStoreParams carries a partial update; nil fields keep the
// stored value.
type UpdateStoreParams struct {
	Name        *string
	Location    *string
	Description *string
	Keyword     *string
}

// SearchCache is the store-search response cache; mutations drop it so
// stale listings never outlive a store change.
type SearchCache interface {
	Invalidate(ctx context.Context) error
}

type StoreCommands interface {
	RegisterStore(ctx context.Context, actor shared.Actor, params RegisterStoreParams) (uuid.UUID, error)
	UpdateStore(ctx context.Context, actor shared.Actor, storeID uuid.UUID, params UpdateStoreParams) error
	DeleteStore(ctx context.Context, actor shared.Actor, storeID uuid.UUID) error
}

type storeCommandsImpl struct {
	storeRepo   StoreRepository
	searchCache SearchCache
}

func NewStoreCommands(storeRepo StoreRepository, searchCache SearchCache) StoreCommands {
	return &storeCommandsImpl{
		storeRepo:   storeRepo,
		searchCache: searchCache,
	}
}

func (s *storeCommandsImpl) RegisterStore(ctx context.Context, actor shared.Actor, params RegisterStoreParams) (uuid.UUID, error) {
	if !actor.IsMerchant() {
		return uuid.Nil, ErrUnauthorizedAction
	}

	entity, err := store.NewStore(actor.ID(), params.Name, params.Location, params.Description, params.Keyword)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidStore)
	}

	storeID, err := s.storeRepo.Create(ctx, entity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	s.invalidateSearch(ctx)
	return storeID, nil
}

func (s *storeCommandsImpl) UpdateStore(ctx context.Context, actor shared.Actor, storeID uuid.UUID, params UpdateStoreParams) error {
	entity, err := s.findOwnedStore(ctx, actor, storeID)
	if err != nil {
		return err
	}

	patch := struct {
		Name        string
		Location    string
		Description string
		Keyword     string
	}{
		Name:        entity.Name(),
		Location:    entity.Location(),
		Description: entity.Description(),
		Keyword:     entity.Keyword(),
	}
	if err := copier.CopyWithOption(&patch, params, copier.Option{IgnoreEmpty: true}); err != nil {
		return errs.Mark(err, ErrInvalidStore)
	}

	if err := entity.Rename(patch.Name); err != nil {
		return errs.Mark(err, ErrInvalidStore)
	}
	entity.SetLocation(patch.Location)
	entity.SetDescription(patch.Description)
	entity.SetKeyword(patch.Keyword)

	if err := s.storeRepo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrStoreNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	s.invalidateSearch(ctx)
	return nil
}

func (s *storeCommandsImpl) DeleteStore(ctx context.Context, actor shared.Actor, storeID uuid.UUID) error {
	if _, err := s.findOwnedStore(ctx, actor, storeID); err != nil {
		return err
	}

	if err := s.storeRepo.Delete(ctx, storeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrStoreNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	s.invalidateSearch(ctx)
	return nil
}

func (s *storeCommandsImpl) findOwnedStore(ctx context.Context, actor shared.Actor, storeID uuid.UUID) (*store.Store, error) {
	if !actor.IsMerchant() {
		return nil, ErrUnauthorizedAction
	}

	entity, err := s.storeRepo.FindEntityByID(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !entity.IsOwnedBy(actor.ID()) {
		return nil, ErrUnauthorizedAction
	}
	return entity, nil
}

func (s *storeCommandsImpl) invalidateSearch(ctx context.Context) {
	if err := s.searchCache.Invalidate(ctx); err != nil {
		slog.Warn("failed to invalidate store search cache", "error", err.Error())
	}
}
