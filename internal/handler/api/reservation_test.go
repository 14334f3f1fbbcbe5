//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"storebook/internal/domain/user"
	"storebook/internal/handler/api"
	"storebook/internal/pkg/clock"
	"storebook/internal/usecase/commands"
	"storebook/tests/common/httptest"
	commandsmock "storebook/tests/mock/commands"
	queriesmock "storebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	clock        *clock.MockClock

	customerID uuid.UUID
	merchantID uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC))
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries, s.clock)

	s.customerID = uuid.New()
	s.merchantID = uuid.New()

	// Mock authentication middleware for testing
	asCustomer := s.authMiddleware(s.customerID, user.RoleCustomer)
	asMerchant := s.authMiddleware(s.merchantID, user.RoleMerchant)

	s.router.POST("/reservations", asCustomer, s.handler.CreateReservation)
	s.router.GET("/reservations/:id", asCustomer, s.handler.GetReservation)
	s.router.POST("/reservations/:id/approve", asMerchant, s.handler.ApproveReservation)
	s.router.POST("/reservations/:id/reject", asMerchant, s.handler.RejectReservation)
	s.router.POST("/reservations/confirm", s.handler.ConfirmReservation)
}

func (s *ReservationHandlerTestSuite) authMiddleware(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	storeID := uuid.New()
	bookingAt := time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC)
	body := map[string]any{
		"store_id":         storeID.String(),
		"reservation_time": bookingAt.Format(time.RFC3339),
	}

	s.Run("success: returns 201 Created with a booking summary", func() {
		summary := &commands.BookingSummary{
			ReservationID:   uuid.New(),
			StoreName:       "Cafe A",
			Location:        "Seoul",
			CustomerName:    "Kim",
			ReservationTime: bookingAt,
		}
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), storeID, gomock.Any()).
			Return(summary, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), "Cafe A")
		s.Contains(rec.Body.String(), "PENDING")
	})

	s.Run("past booking time: 400", func() {
		pastBody := map[string]any{
			"store_id":         storeID.String(),
			"reservation_time": "2026-08-01T10:00:00Z",
		}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, pastBody, "token")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("unknown store: 404", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), storeID, gomock.Any()).
			Return(nil, commands.ErrStoreNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")

		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("missing body: 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "token")

		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("no token: 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestApproveReservation / TestRejectReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestApproveReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/approve"

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().ApproveReservation(gomock.Any(), gomock.Any(), reservationID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("unknown reservation: 404", func() {
		s.mockCommands.EXPECT().ApproveReservation(gomock.Any(), gomock.Any(), reservationID).
			Return(commands.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("foreign store: 403", func() {
		s.mockCommands.EXPECT().ApproveReservation(gomock.Any(), gomock.Any(), reservationID).
			Return(commands.ErrUnauthorizedAction)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		s.Equal(http.StatusForbidden, rec.Code)
	})

	s.Run("malformed id: 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/not-a-uuid/approve", nil, "token")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *ReservationHandlerTestSuite) TestRejectReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String() + "/reject"

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().RejectReservation(gomock.Any(), gomock.Any(), reservationID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		s.Equal(http.StatusNoContent, rec.Code)
	})
}

// ================================================================================
// TestConfirmReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestConfirmReservation() {
	url := "/reservations/confirm"
	body := map[string]any{"phone": "010-1234-5678"}

	s.Run("success: 200 with confirmation projection", func() {
		confirmation := &commands.BookingConfirmation{
			CustomerName:    "Kim",
			StoreName:       "Cafe A",
			ReservationTime: time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC),
		}
		s.mockCommands.EXPECT().ConfirmReservation(gomock.Any(), "010-1234-5678").Return(confirmation, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), "Kim")
		s.Contains(rec.Body.String(), "Cafe A")
	})

	s.Run("not yet approved: 409", func() {
		s.mockCommands.EXPECT().ConfirmReservation(gomock.Any(), "010-1234-5678").
			Return(nil, commands.ErrReservationNotApproved)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("unknown phone: 404", func() {
		s.mockCommands.EXPECT().ConfirmReservation(gomock.Any(), "010-9999-9999").
			Return(nil, commands.ErrCustomerNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"phone": "010-9999-9999"}, "")

		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("missing phone: 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
