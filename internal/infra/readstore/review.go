package readstore

import (
	"context"

	"storebook/internal/infra"
	"storebook/internal/pkg/pgconv"
	"storebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReviewReadStore struct {
	db *pgxpool.Pool
}

func NewReviewReadStore(db *pgxpool.Pool) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	const q = `
		SELECT rv.id, rv.store_id, rv.customer_id, us.name, rv.rating, rv.content, rv.created_at, rv.updated_at
		FROM reviews rv
		JOIN users us ON us.id = rv.customer_id
		WHERE rv.id = $1`

	view, err := r.scanView(r.db.QueryRow(ctx, q, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find review by ID", err)
	}
	return view, nil
}

func (r *ReviewReadStore) FindByStoreID(ctx context.Context, storeID uuid.UUID, limit, offset int32) ([]*queries.ReviewView, error) {
	const q = `
		SELECT rv.id, rv.store_id, rv.customer_id, us.name, rv.rating, rv.content, rv.created_at, rv.updated_at
		FROM reviews rv
		JOIN users us ON us.id = rv.customer_id
		WHERE rv.store_id = $1
		ORDER BY rv.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, q, pgconv.UUIDToPgtype(storeID), limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reviews by store", err)
	}
	defer rows.Close()

	result := make([]*queries.ReviewView, 0)
	for rows.Next() {
		view, err := r.scanView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate review rows", err)
	}
	return result, nil
}

func (r *ReviewReadStore) scanView(row rowScanner) (*queries.ReviewView, error) {
	var (
		id, storeID, customerID pgtype.UUID
		customerName, content   string
		rating                  int32
		createdAt, updatedAt    pgtype.Timestamptz
	)
	if err := row.Scan(&id, &storeID, &customerID, &customerName, &rating, &content, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return &queries.ReviewView{
		ID:           pgconv.UUIDFromPgtype(id),
		StoreID:      pgconv.UUIDFromPgtype(storeID),
		CustomerID:   pgconv.UUIDFromPgtype(customerID),
		CustomerName: customerName,
		Rating:       rating,
		Content:      content,
		CreatedAt:    pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:    pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
