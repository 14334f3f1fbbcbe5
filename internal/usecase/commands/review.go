package commands

import (
	"context"
	"time"

	"storebook/internal/domain/review"
	"storebook/internal/infra"
	"storebook/internal/pkg/errs"
	"storebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound = errs.New("review not found")
	ErrInvalidReview  = errs.New("invalid review")
)

type WriteReviewParams struct {
	StoreID uuid.UUID
	Rating  int32
	Content string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, actor shared.Actor, params WriteReviewParams) (uuid.UUID, error)
	UpdateReview(ctx context.Context, actor shared.Actor, reviewID uuid.UUID, rating int32, content string) error
	DeleteReview(ctx context.Context, actor shared.Actor, reviewID uuid.UUID) error
}

type reviewCommandsImpl struct {
	reviewRepo ReviewRepository
	storeRepo  StoreRepository
	userRepo   UserRepository
}

func NewReviewCommands(reviewRepo ReviewRepository, storeRepo StoreRepository, userRepo UserRepository) ReviewCommands {
	return &reviewCommandsImpl{
		reviewRepo: reviewRepo,
		storeRepo:  storeRepo,
		userRepo:   userRepo,
	}
}

func (r *reviewCommandsImpl) CreateReview(ctx context.Context, actor shared.Actor, params WriteReviewParams) (uuid.UUID, error) {
	if !actor.IsCustomer() {
		return uuid.Nil, ErrUnauthorizedAction
	}

	customer, err := r.userRepo.FindCustomerByID(ctx, actor.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrCustomerNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	storeSnap, err := r.storeRepo.FindByID(ctx, params.StoreID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrStoreNotFound
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity, err := review.NewReview(storeSnap.ID, customer.ID, params.Rating, params.Content)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidReview)
	}

	reviewID, err := r.reviewRepo.Create(ctx, entity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return reviewID, nil
}

func (r *reviewCommandsImpl) UpdateReview(ctx context.Context, actor shared.Actor, reviewID uuid.UUID, rating int32, content string) error {
	snap, err := r.findReview(ctx, reviewID)
	if err != nil {
		return err
	}

	// Only the writing customer may revise a review
	if !actor.IsCustomer() || snap.CustomerID != actor.ID() {
		return ErrUnauthorizedAction
	}

	entity := review.ReconstructReview(snap.ID, snap.StoreID, snap.CustomerID, snap.Rating, snap.Content, time.Time{}, time.Time{})
	if err := entity.Revise(rating, content); err != nil {
		return errs.Mark(err, ErrInvalidReview)
	}

	if err := r.reviewRepo.Update(ctx, entity); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReviewNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

// DeleteReview is allowed for the writing customer and for the merchant
// owning the reviewed store.
func (r *reviewCommandsImpl) DeleteReview(ctx context.Context, actor shared.Actor, reviewID uuid.UUID) error {
	snap, err := r.findReview(ctx, reviewID)
	if err != nil {
		return err
	}

	allowed := (actor.IsCustomer() && snap.CustomerID == actor.ID()) ||
		(actor.IsMerchant() && snap.StoreMerchantID == actor.ID())
	if !allowed {
		return ErrUnauthorizedAction
	}

	if err := r.reviewRepo.Delete(ctx, reviewID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReviewNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (r *reviewCommandsImpl) findReview(ctx context.Context, reviewID uuid.UUID) (*ReviewSnapshot, error) {
	snap, err := r.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return snap, nil
}
