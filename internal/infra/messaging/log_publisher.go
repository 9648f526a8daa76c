package messaging

import (
	"context"
	"log/slog"
)

// LogPublisher stands in for the broker when Kafka is disabled.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, topic, key string, payload []byte) error {
	p.logger.Info("outbox message", "topic", topic, "key", key, "payload", string(payload))
	return nil
}
