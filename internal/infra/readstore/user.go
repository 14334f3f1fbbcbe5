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

type UserReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(db *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const q = `SELECT id, email, name, phone, role, is_active FROM users WHERE id = $1`

	var (
		userID                   pgtype.UUID
		email, name, phone, role string
		isActive                 bool
	)
	err := r.db.QueryRow(ctx, q, pgconv.UUIDToPgtype(id)).Scan(&userID, &email, &name, &phone, &role, &isActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.AuthorizedUserView{
		ID:       pgconv.UUIDFromPgtype(userID),
		Email:    email,
		Name:     name,
		Phone:    phone,
		Role:     role,
		IsActive: isActive,
	}, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const q = `SELECT id, email, name, phone, role, is_active, password_hash FROM users WHERE email = $1`

	var (
		userID                        pgtype.UUID
		mail, name, phone, role, hash string
		isActive                      bool
	)
	err := r.db.QueryRow(ctx, q, email).Scan(&userID, &mail, &name, &phone, &role, &isActive, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &queries.AuthorizedUserView{
		ID:       pgconv.UUIDFromPgtype(userID),
		Email:    mail,
		Name:     name,
		Phone:    phone,
		Role:     role,
		IsActive: isActive,
	}, hash, nil
}
