package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ticket-marketplace/internal/pkg/clock"
	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/usecase/shared"
)

const maxRelayBackoff = 10 * time.Minute

// OutboxRelay publishes notification jobs written alongside state changes. Delivery is
// at least once; consumers dedupe on the ids in the payload.
type OutboxRelay struct {
	*loop
	uow       shared.UnitOfWork
	publisher shared.EventPublisher
	clock     clock.Clock
	metrics   shared.Metrics
	cfg       config.KafkaConfig
	logger    *slog.Logger
}

func NewOutboxRelay(
	uow shared.UnitOfWork,
	publisher shared.EventPublisher,
	clk clock.Clock,
	metrics shared.Metrics,
	cfg config.Config,
	logger *slog.Logger,
) *OutboxRelay {
	r := &OutboxRelay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		metrics:   metrics,
		cfg:       cfg.Kafka,
		logger:    logger,
	}
	r.loop = newLoop("outbox-relay", cfg.Kafka.OutboxInterval, func(ctx context.Context) error {
		_, err := r.RunOnce(ctx)
		return err
	}, logger)
	return r
}

// RunOnce claims one batch of due jobs and returns how many were published.
func (r *OutboxRelay) RunOnce(ctx context.Context) (int, error) {
	var published int
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		now := r.clock.Now()

		jobs, err := tx.Notifications().ClaimDue(ctx, now, r.cfg.OutboxBatch)
		if err != nil {
			return err
		}
		for _, job := range jobs {
			if pubErr := r.publisher.Publish(ctx, job.Topic, messageKey(job.Payload), job.Payload); pubErr != nil {
				r.metrics.OutboxPublished(job.Topic, false)
				dead := job.Attempts+1 >= r.cfg.OutboxMaxTries
				if err := tx.Notifications().MarkFailed(ctx, job.ID, pubErr.Error(), now.Add(r.backoff(job.Attempts)), dead); err != nil {
					return err
				}
				r.logger.Warn("outbox publish failed",
					"job_id", job.ID,
					"topic", job.Topic,
					"attempts", job.Attempts+1,
					"dead", dead,
					"error", pubErr)
				continue
			}
			if err := tx.Notifications().MarkPublished(ctx, job.ID, now); err != nil {
				return err
			}
			r.metrics.OutboxPublished(job.Topic, true)
			published++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return published, nil
}

func (r *OutboxRelay) backoff(attempts int) time.Duration {
	d := r.cfg.OutboxInterval << min(attempts, 16)
	if d <= 0 || d > maxRelayBackoff {
		return maxRelayBackoff
	}
	return d
}

// messageKey partitions messages by event so per-event ordering survives the broker.
func messageKey(payload []byte) string {
	var k struct {
		EventID string `json:"eventId"`
	}
	if err := json.Unmarshal(payload, &k); err != nil {
		return ""
	}
	return k.EventID
}
