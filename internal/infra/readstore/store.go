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

type StoreReadStore struct {
	db *pgxpool.Pool
}

func NewStoreReadStore(db *pgxpool.Pool) *StoreReadStore {
	return &StoreReadStore{db: db}
}

const storeViewColumns = `id, merchant_id, name, location, description, keyword, created_at, updated_at`

func (r *StoreReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.StoreView, error) {
	q := `SELECT ` + storeViewColumns + ` FROM stores WHERE id = $1`
	view, err := r.scanView(r.db.QueryRow(ctx, q, pgconv.UUIDToPgtype(id)))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find store by ID", err)
	}
	return view, nil
}

func (r *StoreReadStore) FindByName(ctx context.Context, name string) (*queries.StoreView, error) {
	q := `SELECT ` + storeViewColumns + ` FROM stores WHERE name = $1`
	view, err := r.scanView(r.db.QueryRow(ctx, q, name))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find store by name", err)
	}
	return view, nil
}

func (r *StoreReadStore) FindAllByKeyword(ctx context.Context, keyword string) ([]*queries.StoreView, error) {
	q := `SELECT ` + storeViewColumns + ` FROM stores
		WHERE keyword ILIKE '%' || $1 || '%' OR name ILIKE '%' || $1 || '%'
		ORDER BY name`
	rows, err := r.db.Query(ctx, q, keyword)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search stores by keyword", err)
	}
	defer rows.Close()

	result := make([]*queries.StoreView, 0)
	for rows.Next() {
		view, err := r.scanView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan store row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate store rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *StoreReadStore) scanView(row rowScanner) (*queries.StoreView, error) {
	var (
		id, merchantID       pgtype.UUID
		name, location       string
		description, keyword pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	if err := row.Scan(&id, &merchantID, &name, &location, &description, &keyword, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return &queries.StoreView{
		ID:          pgconv.UUIDFromPgtype(id),
		MerchantID:  pgconv.UUIDFromPgtype(merchantID),
		Name:        name,
		Location:    location,
		Description: description.String,
		Keyword:     keyword.String,
		CreatedAt:   pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:   pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
