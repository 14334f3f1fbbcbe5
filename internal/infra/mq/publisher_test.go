//go:build unit

package mq

import (
	"context"
	"testing"
	"time"

	"storebook/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPublishReservationDecided_NilSafe(t *testing.T) {
	event := commands.ReservationEvent{
		ReservationID:   uuid.New(),
		StoreID:         uuid.New(),
		CustomerID:      uuid.New(),
		Status:          "APPROVED",
		ReservationTime: time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC),
		DecidedAt:       time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("nil publisher drops the event", func(t *testing.T) {
		var p *Publisher
		assert.NoError(t, p.PublishReservationDecided(context.Background(), event))
	})

	t.Run("publisher without a channel drops the event", func(t *testing.T) {
		p := &Publisher{}
		assert.NoError(t, p.PublishReservationDecided(context.Background(), event))
	})
}
