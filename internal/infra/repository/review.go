package repository

import (
	"context"

	"storebook/internal/domain/review"
	"storebook/internal/infra"
	"storebook/internal/pkg/pgconv"
	"storebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewRepository struct {
	db *pgxpool.Pool
}

func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rev *review.Review) (uuid.UUID, error) {
	const q = `
		INSERT INTO reviews (id, store_id, customer_id, rating, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id pgtype.UUID
	err := r.db.QueryRow(ctx, q,
		pgconv.UUIDToPgtype(rev.ID()),
		pgconv.UUIDToPgtype(rev.StoreID()),
		pgconv.UUIDToPgtype(rev.CustomerID()),
		rev.Rating(),
		rev.Content(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create review", err)
	}

	return pgconv.UUIDFromPgtype(id), nil
}

// FindByID joins the store so authorization can check the owning
// merchant without a second round trip.
func (r *ReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ReviewSnapshot, error) {
	const q = `
		SELECT rv.id, rv.store_id, st.merchant_id, rv.customer_id, rv.rating, rv.content
		FROM reviews rv
		JOIN stores st ON st.id = rv.store_id
		WHERE rv.id = $1`

	var (
		reviewID, storeID, merchantID, customerID pgtype.UUID
		rating                                    int32
		content                                   string
	)
	err := r.db.QueryRow(ctx, q, pgconv.UUIDToPgtype(id)).Scan(
		&reviewID, &storeID, &merchantID, &customerID, &rating, &content,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review by ID", err)
	}

	return &commands.ReviewSnapshot{
		ID:              pgconv.UUIDFromPgtype(reviewID),
		StoreID:         pgconv.UUIDFromPgtype(storeID),
		StoreMerchantID: pgconv.UUIDFromPgtype(merchantID),
		CustomerID:      pgconv.UUIDFromPgtype(customerID),
		Rating:          rating,
		Content:         content,
	}, nil
}

func (r *ReviewRepository) Update(ctx context.Context, rev *review.Review) error {
	const q = `
		UPDATE reviews
		SET rating = $2, content = $3, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, pgconv.UUIDToPgtype(rev.ID()), rev.Rating(), rev.Content())
	if err != nil {
		return infra.WrapRepoErr("failed to update review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM reviews WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete review", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("review not found", nil, infra.KindNotFound)
	}
	return nil
}
