//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"storebook/internal/domain/reservation"
	"storebook/internal/infra"
	"storebook/internal/pkg/clock"
	"storebook/internal/pkg/errs"
	"storebook/internal/usecase/commands"
	"storebook/internal/usecase/shared"
	commandsmock "storebook/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockReservationRepo *commandsmock.MockReservationRepository
	mockStoreRepo       *commandsmock.MockStoreRepository
	mockUserRepo        *commandsmock.MockUserRepository
	mockPublisher       *commandsmock.MockEventPublisher
	clock               *clock.MockClock
	commands            commands.ReservationCommands

	storeID    uuid.UUID
	merchantID uuid.UUID
	customerID uuid.UUID
	storeSnap  *commands.StoreSnapshot
	customer   *commands.CustomerSnapshot
	bookingAt  time.Time
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReservationRepo = commandsmock.NewMockReservationRepository(s.mockCtrl)
	s.mockStoreRepo = commandsmock.NewMockStoreRepository(s.mockCtrl)
	s.mockUserRepo = commandsmock.NewMockUserRepository(s.mockCtrl)
	s.mockPublisher = commandsmock.NewMockEventPublisher(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.commands = commands.NewReservationCommands(
		s.mockReservationRepo, s.mockStoreRepo, s.mockUserRepo, s.mockPublisher, s.clock,
	)

	s.storeID = uuid.New()
	s.merchantID = uuid.New()
	s.customerID = uuid.New()
	s.storeSnap = &commands.StoreSnapshot{
		ID:         s.storeID,
		MerchantID: s.merchantID,
		Name:       "Cafe A",
		Location:   "Seoul",
	}
	s.customer = &commands.CustomerSnapshot{
		ID:    s.customerID,
		Name:  "Kim",
		Phone: "010-1234-5678",
	}
	s.bookingAt = time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound)
}

// ================================================================================
// CreateReservation
// ================================================================================

func (s *ReservationCommandsTestSuite) TestCreateReservation() {
	actor := shared.NewCustomerActor(s.customerID)

	s.Run("success: returns a denormalized booking summary", func() {
		reservationID := uuid.New()
		s.mockStoreRepo.EXPECT().FindByID(gomock.Any(), s.storeID).Return(s.storeSnap, nil)
		s.mockUserRepo.EXPECT().FindCustomerByID(gomock.Any(), s.customerID).Return(s.customer, nil)
		s.mockReservationRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *reservation.Reservation) (uuid.UUID, error) {
				s.Equal(s.storeID, r.StoreID())
				s.Equal(s.customerID, r.CustomerID())
				s.Equal(reservation.StatusPending, r.Status())
				return reservationID, nil
			})

		summary, err := s.commands.CreateReservation(context.Background(), actor, s.storeID, s.bookingAt)

		s.Require().NoError(err)
		s.Equal(reservationID, summary.ReservationID)
		s.Equal("Cafe A", summary.StoreName)
		s.Equal("Seoul", summary.Location)
		s.Equal("Kim", summary.CustomerName)
		s.Equal(s.bookingAt, summary.ReservationTime)
	})

	s.Run("store missing: ErrStoreNotFound", func() {
		s.mockStoreRepo.EXPECT().FindByID(gomock.Any(), s.storeID).Return(nil, notFoundErr())

		summary, err := s.commands.CreateReservation(context.Background(), actor, s.storeID, s.bookingAt)

		s.Require().ErrorIs(err, commands.ErrStoreNotFound)
		s.Nil(summary)
	})

	s.Run("customer missing: ErrCustomerNotFound", func() {
		s.mockStoreRepo.EXPECT().FindByID(gomock.Any(), s.storeID).Return(s.storeSnap, nil)
		s.mockUserRepo.EXPECT().FindCustomerByID(gomock.Any(), s.customerID).Return(nil, notFoundErr())

		summary, err := s.commands.CreateReservation(context.Background(), actor, s.storeID, s.bookingAt)

		s.Require().ErrorIs(err, commands.ErrCustomerNotFound)
		s.Nil(summary)
	})

	s.Run("merchant actor: ErrUnauthorizedAction", func() {
		merchant := shared.NewMerchantActor(s.merchantID)

		summary, err := s.commands.CreateReservation(context.Background(), merchant, s.storeID, s.bookingAt)

		s.Require().ErrorIs(err, commands.ErrUnauthorizedAction)
		s.Nil(summary)
	})
}

// ================================================================================
// ApproveReservation / RejectReservation
// ================================================================================

func (s *ReservationCommandsTestSuite) pendingSnapshot(id uuid.UUID) *commands.ReservationSnapshot {
	return &commands.ReservationSnapshot{
		ID:              id,
		StoreID:         s.storeID,
		CustomerID:      s.customerID,
		ReservationTime: s.bookingAt,
		Status:          reservation.StatusPending,
	}
}

func (s *ReservationCommandsTestSuite) TestApproveReservation() {
	owner := shared.NewMerchantActor(s.merchantID)
	reservationID := uuid.New()

	s.Run("success: owning merchant approves and an event goes out", func() {
		s.mockReservationRepo.EXPECT().FindByID(gomock.Any(), reservationID).Return(s.pendingSnapshot(reservationID), nil)
		s.mockStoreRepo.EXPECT().FindByID(gomock.Any(), s.storeID).Return(s.storeSnap, nil)
		s.mockReservationRepo.EXPECT().UpdateStatus(gomock.Any(), reservationID, reservation.StatusApproved).Return(nil)
		s.mockPublisher.EXPECT().PublishReservationDecided(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event commands.ReservationEvent) error {
				s.Equal(reservationID, event.ReservationID)
				s.Equal("APPROVED", event.Status)
				s.Equal(s.clock.Now(), event.DecidedAt)
				return nil
			})

		err := s.commands.ApproveReservation(context.Background(), owner, reservationID)

		s.NoError(err)
	})

	s.Run("publish failure does not fail the transition", func() {
		s.mockReservationRepo.EXPECT().FindByID(gomock.Any(), reservationID).Return(s.pendingSnapshot(reservationID), nil)
		s.mockStoreRepo.EXPECT().FindByID(gomock.Any(), s.storeID).Return(s.storeSnap, nil)
		s.mockReservationRepo.EXPECT().UpdateStatus(gomock.Any(), reservationID, reservation.StatusApproved).Return(nil)
		s.mockPublisher.EXPECT().PublishReservationDecided(gomock.Any(), gomock.Any()).Return(errs.New("broker down"))

		err := s.commands.ApproveReservation(context.Background(), owner, reservationID)

		s.NoError(err)
	})

	s.Run("reservation missing: ErrReservationNotFound", func() {
		s.mockReservationRepo.EXPECT().FindByID(gomock.Any(), reservationID).Return(nil, notFoundErr())

		err := s.commands.ApproveReservation(context.Background(), owner, reservationID)

		s.ErrorIs(err, commands.ErrReservationNotFound)
	})

	s.Run("other merchant: ErrUnauthorizedAction", func() {
		other := shared.NewMerchantActor(uuid.New())
		s.mockReservationRepo.EXPECT().FindByID(gomock.Any(), reservationID).Return(s.pendingSnapshot(reservationID), nil)
		s.mockStoreRepo.EXPECT().FindByID(gomock.Any(), s.storeID).Return(s.storeSnap, nil)

		err := s.commands.ApproveReservation(context.Background(), other, reservationID)

		s.ErrorIs(err, commands.ErrUnauthorizedAction)
	})

	s.Run("customer actor: ErrUnauthorizedAction", func() {
		customer := shared.NewCustomerActor(s.customerID)
		s.mockReservationRepo.EXPECT().FindByID(gomock.Any(), reservationID).Return(s.pendingSnapshot(reservationID), nil)

		err := s.commands.ApproveReservation(context.Background(), customer, reservationID)

		s.ErrorIs(err, commands.ErrUnauthorizedAction)
	})

	s.Run("already rejected: approve still wins", func() {
		snap := s.pendingSnapshot(reservationID)
		snap.Status = reservation.StatusRejected
		s.mockReservationRepo.EXPECT().FindByID(gomock.Any(), reservationID).Return(snap, nil)
		s.mockStoreRepo.EXPECT().FindByID(gomock.Any(), s.storeID).Return(s.storeSnap, nil)
		s.mockReservationRepo.EXPECT().UpdateStatus(gomock.Any(), reservationID, reservation.StatusApproved).Return(nil)
		s.mockPublisher.EXPECT().PublishReservationDecided(gomock.Any(), gomock.Any()).Return(nil)

		err := s.commands.ApproveReservation(context.Background(), owner, reservationID)

		s.NoError(err)
	})
}

func (s *ReservationCommandsTestSuite) TestRejectReservation() {
	owner := shared.NewMerchantActor(s.merchantID)
	reservationID := uuid.New()

	s.Run("success: owning merchant rejects", func() {
		s.mockReservationRepo.EXPECT().FindByID(gomock.Any(), reservationID).Return(s.pendingSnapshot(reservationID), nil)
		s.mockStoreRepo.EXPECT().FindByID(gomock.Any(), s.storeID).Return(s.storeSnap, nil)
		s.mockReservationRepo.EXPECT().UpdateStatus(gomock.Any(), reservationID, reservation.StatusRejected).Return(nil)
		s.mockPublisher.EXPECT().PublishReservationDecided(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event commands.ReservationEvent) error {
				s.Equal("REJECTED", event.Status)
				return nil
			})

		err := s.commands.RejectReservation(context.Background(), owner, reservationID)

		s.NoError(err)
	})
}

// ================================================================================
// ConfirmReservation
// ================================================================================

func (s *ReservationCommandsTestSuite) TestConfirmReservation() {
	phone := "010-1234-5678"

	s.Run("success: approved latest reservation confirms", func() {
		snap := s.pendingSnapshot(uuid.New())
		snap.Status = reservation.StatusApproved
		s.mockUserRepo.EXPECT().FindCustomerByPhone(gomock.Any(), phone).Return(s.customer, nil)
		s.mockReservationRepo.EXPECT().FindLatestByCustomerID(gomock.Any(), s.customerID).Return(snap, nil)
		s.mockStoreRepo.EXPECT().FindByID(gomock.Any(), s.storeID).Return(s.storeSnap, nil)

		confirmation, err := s.commands.ConfirmReservation(context.Background(), phone)

		s.Require().NoError(err)
		s.Equal("Kim", confirmation.CustomerName)
		s.Equal("Cafe A", confirmation.StoreName)
		s.Equal(s.bookingAt, confirmation.ReservationTime)
	})

	s.Run("pending reservation: ErrReservationNotApproved", func() {
		s.mockUserRepo.EXPECT().FindCustomerByPhone(gomock.Any(), phone).Return(s.customer, nil)
		s.mockReservationRepo.EXPECT().FindLatestByCustomerID(gomock.Any(), s.customerID).Return(s.pendingSnapshot(uuid.New()), nil)

		confirmation, err := s.commands.ConfirmReservation(context.Background(), phone)

		s.Require().ErrorIs(err, commands.ErrReservationNotApproved)
		s.Nil(confirmation)
	})

	s.Run("rejected reservation: ErrReservationNotApproved", func() {
		snap := s.pendingSnapshot(uuid.New())
		snap.Status = reservation.StatusRejected
		s.mockUserRepo.EXPECT().FindCustomerByPhone(gomock.Any(), phone).Return(s.customer, nil)
		s.mockReservationRepo.EXPECT().FindLatestByCustomerID(gomock.Any(), s.customerID).Return(snap, nil)

		_, err := s.commands.ConfirmReservation(context.Background(), phone)

		s.ErrorIs(err, commands.ErrReservationNotApproved)
	})

	s.Run("unknown phone: ErrCustomerNotFound", func() {
		s.mockUserRepo.EXPECT().FindCustomerByPhone(gomock.Any(), "010-0000-0000").Return(nil, notFoundErr())

		_, err := s.commands.ConfirmReservation(context.Background(), "010-0000-0000")

		s.ErrorIs(err, commands.ErrCustomerNotFound)
	})

	s.Run("no reservations: ErrReservationNotFound", func() {
		s.mockUserRepo.EXPECT().FindCustomerByPhone(gomock.Any(), phone).Return(s.customer, nil)
		s.mockReservationRepo.EXPECT().FindLatestByCustomerID(gomock.Any(), s.customerID).Return(nil, notFoundErr())

		_, err := s.commands.ConfirmReservation(context.Background(), phone)

		s.ErrorIs(err, commands.ErrReservationNotFound)
	})
}
