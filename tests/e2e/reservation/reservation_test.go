//go:build e2e

package reservation_test

import (
	"net/http"
	"testing"
	"time"

	"storebook/internal/handler/dto/request"
	"storebook/internal/handler/dto/response"
	"storebook/tests/common/authtest"
	"storebook/tests/common/httptest"
	"storebook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	storesURL       = "/api/stores"
	reservationsURL = "/api/reservations"
	confirmURL      = "/api/reservations/confirm"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

// registerStore signs up a merchant, logs in, and registers a store.
// Returns the merchant token and the new store ID.
func (s *ReservationSuite) registerStore(email, storeName, location string) (string, uuid.UUID) {
	t := s.T()

	token := authtest.RegisterAndLogin(t, s.Router, email, "Owner of "+storeName, "010-9000-0001", "merchant")

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, storesURL,
		request.RegisterStoreRequest{Name: storeName, Location: location}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]string
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	storeID, err := uuid.Parse(created["id"])
	require.NoError(t, err, "store ID should be a UUID")

	return token, storeID
}

// bookReservation signs up a customer and books the given store.
// Returns the customer token and the reservation ID.
func (s *ReservationSuite) bookReservation(email, phone string, storeID uuid.UUID) (string, uuid.UUID) {
	t := s.T()

	token := authtest.RegisterAndLogin(t, s.Router, email, "Kim", phone, "customer")

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
		request.CreateReservationRequest{
			StoreID:         storeID,
			ReservationTime: time.Now().Add(24 * time.Hour).Truncate(time.Second),
		}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var summary response.BookingSummaryResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &summary))
	require.Equal(t, "PENDING", summary.Status)

	return token, summary.ReservationID
}

// =============================================================================
// TestReservationLifecycle - create, approve/reject, confirm by phone
// =============================================================================

func (s *ReservationSuite) TestReservationLifecycle() {
	s.Run("Normal case: booking is created as PENDING with store and customer names", func() {
		t := s.T()

		_, storeID := s.registerStore("owner-a@example.com", "Cafe A", "Seoul")
		token := authtest.RegisterAndLogin(t, s.Router, "kim@example.com", "Kim", "010-1234-5678", "customer")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.CreateReservationRequest{
				StoreID:         storeID,
				ReservationTime: time.Now().Add(24 * time.Hour).Truncate(time.Second),
			}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actual response.BookingSummaryResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))

		expected := &response.BookingSummaryResponse{
			StoreName:    "Cafe A",
			Location:     "Seoul",
			CustomerName: "Kim",
			Status:       "PENDING",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingSummaryResponse{}, "ReservationID", "ReservationTime"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Booking summary mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: approved reservation can be confirmed by phone", func() {
		t := s.T()

		merchantToken, storeID := s.registerStore("owner-b@example.com", "Cafe B", "Busan")
		_, reservationID := s.bookReservation("lee@example.com", "010-2222-3333", storeID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/"+reservationID.String()+"/approve", nil, merchantToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL,
			request.ConfirmReservationRequest{Phone: "010-2222-3333"}, "")
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())

		var confirmation response.BookingConfirmationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, cw.Body, &confirmation))
		require.Equal(t, "Kim", confirmation.CustomerName)
		require.Equal(t, "Cafe B", confirmation.StoreName)
	})

	s.Run("Error case: pending reservation cannot be confirmed", func() {
		t := s.T()

		_, storeID := s.registerStore("owner-c@example.com", "Cafe C", "Daegu")
		s.bookReservation("park@example.com", "010-4444-5555", storeID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL,
			request.ConfirmReservationRequest{Phone: "010-4444-5555"}, "")
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("Error case: rejected reservation cannot be confirmed", func() {
		t := s.T()

		merchantToken, storeID := s.registerStore("owner-d@example.com", "Cafe D", "Incheon")
		_, reservationID := s.bookReservation("choi@example.com", "010-6666-7777", storeID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/"+reservationID.String()+"/reject", nil, merchantToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL,
			request.ConfirmReservationRequest{Phone: "010-6666-7777"}, "")
		require.Equal(t, http.StatusConflict, cw.Code, cw.Body.String())
	})

	s.Run("Error case: only the owning merchant can approve", func() {
		t := s.T()

		_, storeID := s.registerStore("owner-e@example.com", "Cafe E", "Gwangju")
		otherToken, _ := s.registerStore("owner-f@example.com", "Cafe F", "Jeju")
		_, reservationID := s.bookReservation("jung@example.com", "010-8888-9999", storeID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			reservationsURL+"/"+reservationID.String()+"/approve", nil, otherToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: a decision can be reversed, last write wins", func() {
		t := s.T()

		merchantToken, storeID := s.registerStore("owner-g@example.com", "Cafe G", "Ulsan")
		_, reservationID := s.bookReservation("han@example.com", "010-1111-2222", storeID)

		approveURL := reservationsURL + "/" + reservationID.String() + "/approve"
		rejectURL := reservationsURL + "/" + reservationID.String() + "/reject"

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, rejectURL, nil, merchantToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, approveURL, nil, merchantToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		cw := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL,
			request.ConfirmReservationRequest{Phone: "010-1111-2222"}, "")
		require.Equal(t, http.StatusOK, cw.Code, cw.Body.String())
	})

	s.Run("Normal case: store deletion removes its reservations", func() {
		t := s.T()

		merchantToken, storeID := s.registerStore("owner-i@example.com", "Cafe I", "Sejong")
		customerToken, reservationID := s.bookReservation("song@example.com", "010-3333-4444", storeID)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			storesURL+"/"+storeID.String(), nil, merchantToken)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+reservationID.String(), nil, customerToken)
		require.Equal(t, http.StatusNotFound, gw.Code, gw.Body.String())
	})

	s.Run("Error case: unknown phone returns not found", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, confirmURL,
			request.ConfirmReservationRequest{Phone: "010-0000-0000"}, "")
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: merchants cannot book reservations", func() {
		t := s.T()

		merchantToken, storeID := s.registerStore("owner-h@example.com", "Cafe H", "Suwon")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			request.CreateReservationRequest{
				StoreID:         storeID,
				ReservationTime: time.Now().Add(24 * time.Hour),
			}, merchantToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
