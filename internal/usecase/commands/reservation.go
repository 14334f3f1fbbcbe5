package commands

import (
	"context"
	"log/slog"
	"time"

	"storebook/internal/domain/reservation"
	"storebook/internal/infra"
	"storebook/internal/pkg/clock"
	"storebook/internal/pkg/errs"
	"storebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrStoreNotFound           = errs.New("store not found")
	ErrCustomerNotFound        = errs.New("customer not found")
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrReservationNotApproved  = errs.New("reservation not approved")
	ErrUnauthorizedAction      = errs.New("unauthorized action")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// BookingSummary is the denormalized snapshot returned from create. It
// combines display fields looked up at creation time; later mutations
// of the store or customer records do not reach into it.
type BookingSummary struct {
	ReservationID   uuid.UUID
	StoreName       string
	Location        string
	CustomerName    string
	ReservationTime time.Time
}

// BookingConfirmation is the flat read-only projection returned from
// the phone-based confirmation lookup.
type BookingConfirmation struct {
	CustomerName    string
	StoreName       string
	ReservationTime time.Time
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, actor shared.Actor, storeID uuid.UUID, reservationTime time.Time) (*BookingSummary, error)
	ApproveReservation(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) error
	RejectReservation(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) error
	ConfirmReservation(ctx context.Context, customerPhone string) (*BookingConfirmation, error)
}

type reservationCommandsImpl struct {
	reservationRepo ReservationRepository
	storeRepo       StoreRepository
	userRepo        UserRepository
	publisher       EventPublisher
	clock           clock.Clock
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	storeRepo StoreRepository,
	userRepo UserRepository,
	publisher EventPublisher,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo: reservationRepo,
		storeRepo:       storeRepo,
		userRepo:        userRepo,
		publisher:       publisher,
		clock:           clock,
	}
}

func (r *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	actor shared.Actor,
	storeID uuid.UUID,
	reservationTime time.Time,
) (*BookingSummary, error) {
	if !actor.IsCustomer() {
		return nil, ErrUnauthorizedAction
	}

	storeSnap, err := r.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	customer, err := r.userRepo.FindCustomerByID(ctx, actor.ID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity := reservation.NewReservation(storeSnap.ID, customer.ID, reservationTime)

	reservationID, err := r.reservationRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &BookingSummary{
		ReservationID:   reservationID,
		StoreName:       storeSnap.Name,
		Location:        storeSnap.Location,
		CustomerName:    customer.Name,
		ReservationTime: entity.ReservationTime(),
	}, nil
}

func (r *reservationCommandsImpl) ApproveReservation(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) error {
	return r.decide(ctx, actor, reservationID, reservation.StatusApproved)
}

func (r *reservationCommandsImpl) RejectReservation(ctx context.Context, actor shared.Actor, reservationID uuid.UUID) error {
	return r.decide(ctx, actor, reservationID, reservation.StatusRejected)
}

// decide performs the PENDING→APPROVED/REJECTED transition. There is no
// terminal-state guard and no compare-and-swap: concurrent decisions on
// the same reservation race and the last write wins.
func (r *reservationCommandsImpl) decide(
	ctx context.Context,
	actor shared.Actor,
	reservationID uuid.UUID,
	status reservation.Status,
) error {
	snap, err := r.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := r.authorizeDecision(ctx, actor, snap.StoreID); err != nil {
		return err
	}

	if err := r.reservationRepo.UpdateStatus(ctx, reservationID, status); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	r.publishDecision(ctx, snap, status)
	return nil
}

// authorizeDecision allows only the merchant owning the booked store to
// approve or reject.
func (r *reservationCommandsImpl) authorizeDecision(ctx context.Context, actor shared.Actor, storeID uuid.UUID) error {
	if !actor.IsMerchant() {
		return ErrUnauthorizedAction
	}

	storeSnap, err := r.storeRepo.FindByID(ctx, storeID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrStoreNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if storeSnap.MerchantID != actor.ID() {
		return ErrUnauthorizedAction
	}
	return nil
}

func (r *reservationCommandsImpl) ConfirmReservation(ctx context.Context, customerPhone string) (*BookingConfirmation, error) {
	customer, err := r.userRepo.FindCustomerByPhone(ctx, customerPhone)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	snap, err := r.reservationRepo.FindLatestByCustomerID(ctx, customer.ID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if snap.Status != reservation.StatusApproved {
		return nil, ErrReservationNotApproved
	}

	storeSnap, err := r.storeRepo.FindByID(ctx, snap.StoreID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &BookingConfirmation{
		CustomerName:    customer.Name,
		StoreName:       storeSnap.Name,
		ReservationTime: snap.ReservationTime,
	}, nil
}

func (r *reservationCommandsImpl) publishDecision(ctx context.Context, snap *ReservationSnapshot, status reservation.Status) {
	event := ReservationEvent{
		ReservationID:   snap.ID,
		StoreID:         snap.StoreID,
		CustomerID:      snap.CustomerID,
		Status:          status.String(),
		ReservationTime: snap.ReservationTime,
		DecidedAt:       r.clock.Now(),
	}

	if err := r.publisher.PublishReservationDecided(ctx, event); err != nil {
		slog.Warn("failed to publish reservation event",
			"reservation_id", snap.ID, "status", status.String(), "error", err.Error())
	}
}
