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

type ReservationReadStore struct {
	db *pgxpool.Pool
}

func NewReservationReadStore(db *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	const q = `
		SELECT rs.id, rs.store_id, st.name, st.location, rs.customer_id, us.name,
		       rs.reservation_time, rs.status, rs.created_at, rs.updated_at
		FROM reservations rs
		JOIN stores st ON st.id = rs.store_id
		JOIN users us ON us.id = rs.customer_id
		WHERE rs.id = $1`

	var (
		resID, storeID, customerID pgtype.UUID
		storeName, location        string
		customerName, status       string
		reservationTime            pgtype.Timestamptz
		createdAt, updatedAt       pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, pgconv.UUIDToPgtype(id)).Scan(
		&resID, &storeID, &storeName, &location, &customerID, &customerName,
		&reservationTime, &status, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return &queries.ReservationView{
		ID:              pgconv.UUIDFromPgtype(resID),
		StoreID:         pgconv.UUIDFromPgtype(storeID),
		StoreName:       storeName,
		Location:        location,
		CustomerID:      pgconv.UUIDFromPgtype(customerID),
		CustomerName:    customerName,
		ReservationTime: pgconv.TimeFromPgtype(reservationTime),
		Status:          status,
		CreatedAt:       pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:       pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

func (r *ReservationReadStore) FindByStoreID(ctx context.Context, storeID uuid.UUID) ([]*queries.ReservationListItem, error) {
	const q = `
		SELECT rs.id, rs.store_id, st.name, us.name, rs.reservation_time, rs.status, rs.created_at
		FROM reservations rs
		JOIN stores st ON st.id = rs.store_id
		JOIN users us ON us.id = rs.customer_id
		WHERE rs.store_id = $1
		ORDER BY rs.reservation_time`

	return r.list(ctx, q, pgconv.UUIDToPgtype(storeID))
}

func (r *ReservationReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*queries.ReservationListItem, error) {
	const q = `
		SELECT rs.id, rs.store_id, st.name, us.name, rs.reservation_time, rs.status, rs.created_at
		FROM reservations rs
		JOIN stores st ON st.id = rs.store_id
		JOIN users us ON us.id = rs.customer_id
		WHERE rs.customer_id = $1
		ORDER BY rs.created_at DESC`

	return r.list(ctx, q, pgconv.UUIDToPgtype(customerID))
}

func (r *ReservationReadStore) list(ctx context.Context, q string, args ...any) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	result := make([]*queries.ReservationListItem, 0)
	for rows.Next() {
		var (
			resID, storeID          pgtype.UUID
			storeName, customerName string
			reservationTime         pgtype.Timestamptz
			status                  string
			createdAt               pgtype.Timestamptz
		)
		if err := rows.Scan(&resID, &storeID, &storeName, &customerName, &reservationTime, &status, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, &queries.ReservationListItem{
			ID:              pgconv.UUIDFromPgtype(resID),
			StoreID:         pgconv.UUIDFromPgtype(storeID),
			StoreName:       storeName,
			CustomerName:    customerName,
			ReservationTime: pgconv.TimeFromPgtype(reservationTime),
			Status:          status,
			CreatedAt:       pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}
