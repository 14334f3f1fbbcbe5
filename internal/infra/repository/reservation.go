package repository

import (
	"context"

	"storebook/internal/domain/reservation"
	"storebook/internal/infra"
	"storebook/internal/pkg/pgconv"
	"storebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (uuid.UUID, error) {
	const q = `
		INSERT INTO reservations (id, store_id, customer_id, reservation_time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id pgtype.UUID
	err := r.db.QueryRow(ctx, q,
		pgconv.UUIDToPgtype(res.ID()),
		pgconv.UUIDToPgtype(res.StoreID()),
		pgconv.UUIDToPgtype(res.CustomerID()),
		pgconv.TimeToPgtype(res.ReservationTime()),
		res.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return pgconv.UUIDFromPgtype(id), nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*commands.ReservationSnapshot, error) {
	const q = `
		SELECT id, store_id, customer_id, reservation_time, status
		FROM reservations
		WHERE id = $1`

	return r.scanSnapshot(ctx, q, pgconv.UUIDToPgtype(id))
}

func (r *ReservationRepository) FindLatestByCustomerID(ctx context.Context, customerID uuid.UUID) (*commands.ReservationSnapshot, error) {
	const q = `
		SELECT id, store_id, customer_id, reservation_time, status
		FROM reservations
		WHERE customer_id = $1
		ORDER BY created_at DESC
		LIMIT 1`

	return r.scanSnapshot(ctx, q, pgconv.UUIDToPgtype(customerID))
}

// UpdateStatus is a plain single-row write. There is deliberately no
// status precondition in the WHERE clause; concurrent writers race and
// the last one wins.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status reservation.Status) error {
	const q = `
		UPDATE reservations
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, pgconv.UUIDToPgtype(id), status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) scanSnapshot(ctx context.Context, q string, args ...any) (*commands.ReservationSnapshot, error) {
	var (
		id, storeID, customerID pgtype.UUID
		reservationTime         pgtype.Timestamptz
		status                  string
	)
	err := r.db.QueryRow(ctx, q, args...).Scan(&id, &storeID, &customerID, &reservationTime, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	st, err := reservation.NewStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid reservation status in storage", err)
	}

	return &commands.ReservationSnapshot{
		ID:              pgconv.UUIDFromPgtype(id),
		StoreID:         pgconv.UUIDFromPgtype(storeID),
		CustomerID:      pgconv.UUIDFromPgtype(customerID),
		ReservationTime: pgconv.TimeFromPgtype(reservationTime),
		Status:          st,
	}, nil
}
