package repository

import (
	"context"

	"storebook/internal/domain/store"
	"storebook/internal/infra"
	"storebook/internal/pkg/pgconv"
	"storebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StoreRepository struct {
	db *pgxpool.Pool
}

func NewStoreRepository(db *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{db: db}
}

func (r *StoreRepository) Create(ctx context.Context, s *store.Store) (uuid.UUID, error) {
	const q = `
		INSERT INTO stores (id, merchant_id, name, location, description, keyword)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id pgtype.UUID
	err := r.db.QueryRow(ctx, q,
		pgconv.UUIDToPgtype(s.ID()),
		pgconv.UUIDToPgtype(s.MerchantID()),
		s.Name(),
		s.Location(),
		s.Description(),
		s.Keyword(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create store", err)
	}

	return pgconv.UUIDFromPgtype(id), nil
}

func (r *StoreRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.StoreSnapshot, error) {
	const q = `
		SELECT id, merchant_id, name, location
		FROM stores
		WHERE id = $1`

	var (
		storeID, merchantID pgtype.UUID
		name, location      string
	)
	err := r.db.QueryRow(ctx, q, pgconv.UUIDToPgtype(id)).Scan(&storeID, &merchantID, &name, &location)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find store by ID", err)
	}

	return &commands.StoreSnapshot{
		ID:         pgconv.UUIDFromPgtype(storeID),
		MerchantID: pgconv.UUIDFromPgtype(merchantID),
		Name:       name,
		Location:   location,
	}, nil
}

func (r *StoreRepository) FindEntityByID(ctx context.Context, id uuid.UUID) (*store.Store, error) {
	const q = `
		SELECT id, merchant_id, name, location, description, keyword, created_at, updated_at
		FROM stores
		WHERE id = $1`

	var (
		storeID, merchantID                pgtype.UUID
		name, location, description, kword string
		createdAt, updatedAt               pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, pgconv.UUIDToPgtype(id)).Scan(
		&storeID, &merchantID, &name, &location, &description, &kword, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("store not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find store by ID", err)
	}

	return store.ReconstructStore(
		pgconv.UUIDFromPgtype(storeID),
		pgconv.UUIDFromPgtype(merchantID),
		name, location, description, kword,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *StoreRepository) Update(ctx context.Context, s *store.Store) error {
	const q = `
		UPDATE stores
		SET name = $2, location = $3, description = $4, keyword = $5, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q,
		pgconv.UUIDToPgtype(s.ID()),
		s.Name(),
		s.Location(),
		s.Description(),
		s.Keyword(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update store", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("store not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *StoreRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM stores WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, pgconv.UUIDToPgtype(id))
	if err != nil {
		return infra.WrapRepoErr("failed to delete store", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("store not found", nil, infra.KindNotFound)
	}
	return nil
}
