//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"storebook/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	storeID := uuid.New()
	customerID := uuid.New()
	at := time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC)

	r := reservation.NewReservation(storeID, customerID, at)
	require.NotNil(t, r)

	assert.NotEqual(t, uuid.Nil, r.ID())
	assert.Equal(t, storeID, r.StoreID())
	assert.Equal(t, customerID, r.CustomerID())
	assert.Equal(t, at, r.ReservationTime())
	assert.Equal(t, reservation.StatusPending, r.Status())
	assert.True(t, r.IsPending())
	assert.False(t, r.IsApproved())
}

func TestReservationTransitions(t *testing.T) {
	newPending := func() *reservation.Reservation {
		return reservation.NewReservation(uuid.New(), uuid.New(), time.Now().Add(time.Hour))
	}

	t.Run("approve sets APPROVED", func(t *testing.T) {
		r := newPending()
		r.Approve()
		assert.Equal(t, reservation.StatusApproved, r.Status())
		assert.True(t, r.IsApproved())
	})

	t.Run("reject sets REJECTED", func(t *testing.T) {
		r := newPending()
		r.Reject()
		assert.Equal(t, reservation.StatusRejected, r.Status())
	})

	t.Run("no terminal guard, last write wins", func(t *testing.T) {
		r := newPending()
		r.Approve()
		r.Reject()
		assert.Equal(t, reservation.StatusRejected, r.Status())

		r.Approve()
		assert.Equal(t, reservation.StatusApproved, r.Status())
	})

	t.Run("re-approving is allowed", func(t *testing.T) {
		r := newPending()
		r.Approve()
		r.Approve()
		assert.Equal(t, reservation.StatusApproved, r.Status())
	})
}

func TestStatus(t *testing.T) {
	cases := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "PENDING OK", input: "PENDING", ok: true},
		{name: "APPROVED OK", input: "APPROVED", ok: true},
		{name: "REJECTED OK", input: "REJECTED", ok: true},
		{name: "lowercase NG", input: "pending", ok: false},
		{name: "empty NG", input: "", ok: false},
		{name: "unknown NG", input: "CANCELLED", ok: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s, err := reservation.NewStatus(c.input)
			if c.ok {
				require.NoError(t, err)
				assert.Equal(t, c.input, s.String())
			} else {
				require.ErrorIs(t, err, reservation.ErrInvalidStatus)
			}
		})
	}
}

func TestValidateReservationTime(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	t.Run("future time OK", func(t *testing.T) {
		err := reservation.ValidateReservationTime(now.Add(time.Minute), now)
		assert.NoError(t, err)
	})

	t.Run("past time NG", func(t *testing.T) {
		err := reservation.ValidateReservationTime(now.Add(-time.Minute), now)
		assert.ErrorIs(t, err, reservation.ErrReservationTimePast)
	})

	t.Run("exactly now NG", func(t *testing.T) {
		err := reservation.ValidateReservationTime(now, now)
		assert.ErrorIs(t, err, reservation.ErrReservationTimePast)
	})
}
