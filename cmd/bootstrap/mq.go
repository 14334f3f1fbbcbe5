package bootstrap

import (
	"context"
	"log/slog"

	"storebook/internal/infra/mq"
	"storebook/internal/pkg/config"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher returns a nil publisher when the broker is unreachable.
// Event delivery is best effort; reservation decisions never depend on it.
func NewPublisher(lc fx.Lifecycle, cfg config.Config) *mq.Publisher {
	publisher, cleanup, err := mq.Connect(cfg.AMQP.URL)
	if err != nil {
		slog.Warn("RabbitMQ unavailable, reservation events disabled", "error", err.Error())
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return publisher
}
