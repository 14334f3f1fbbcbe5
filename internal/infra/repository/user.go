package repository

import (
	"context"

	"storebook/internal/domain/user"
	"storebook/internal/infra"
	"storebook/internal/pkg/pgconv"
	"storebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	const q = `
		INSERT INTO users (id, email, password_hash, name, phone, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id pgtype.UUID
	err := r.db.QueryRow(ctx, q,
		pgconv.UUIDToPgtype(u.ID()),
		u.Email().Value(),
		u.PasswordHash(),
		u.Name().Value(),
		u.Phone().Value(),
		u.Role().String(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return pgconv.UUIDFromPgtype(id), nil
}

// FindCustomerByID looks up customer accounts only; a merchant id is a
// lookup miss here.
func (r *UserRepository) FindCustomerByID(ctx context.Context, id uuid.UUID) (*commands.CustomerSnapshot, error) {
	const q = `
		SELECT id, name, phone
		FROM users
		WHERE id = $1 AND role = 'customer'`

	return r.scanCustomer(ctx, q, pgconv.UUIDToPgtype(id))
}

func (r *UserRepository) FindCustomerByPhone(ctx context.Context, phone string) (*commands.CustomerSnapshot, error) {
	const q = `
		SELECT id, name, phone
		FROM users
		WHERE phone = $1 AND role = 'customer'`

	return r.scanCustomer(ctx, q, phone)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, email).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check email existence", err)
	}
	return exists, nil
}

func (r *UserRepository) scanCustomer(ctx context.Context, q string, args ...any) (*commands.CustomerSnapshot, error) {
	var (
		id          pgtype.UUID
		name, phone string
	)
	err := r.db.QueryRow(ctx, q, args...).Scan(&id, &name, &phone)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}

	return &commands.CustomerSnapshot{
		ID:    pgconv.UUIDFromPgtype(id),
		Name:  name,
		Phone: phone,
	}, nil
}
