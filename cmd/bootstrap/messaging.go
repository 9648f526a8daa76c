package bootstrap

import (
	"context"
	"log/slog"

	"ticket-marketplace/internal/infra/messaging"
	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/usecase/shared"

	"go.uber.org/fx"
)

var MessagingModule = fx.Module("messaging",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher falls back to logging outbox messages when Kafka is disabled.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.EventPublisher, error) {
	if !cfg.Kafka.Enabled {
		logger.Info("kafka disabled, outbox messages will be logged")
		return messaging.NewLogPublisher(logger), nil
	}

	prod, err := messaging.NewSyncProducer(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	pub := messaging.NewKafkaPublisher(prod, logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
