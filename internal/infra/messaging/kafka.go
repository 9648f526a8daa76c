package messaging

import (
	"context"
	"log/slog"
	"time"

	"ticket-marketplace/internal/pkg/config"
	"ticket-marketplace/internal/pkg/errs"

	"github.com/IBM/sarama"
)

func NewSyncProducer(cfg config.KafkaConfig) (sarama.SyncProducer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.RequiredAcks = sarama.RequiredAcks(cfg.RequiredAcks)
	saramaCfg.Producer.Retry.Max = cfg.RetryMax
	saramaCfg.Producer.Return.Successes = true

	prod, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create kafka producer")
	}
	return prod, nil
}

// KafkaPublisher sends outbox payloads keyed so that one key always lands on one partition.
type KafkaPublisher struct {
	prod   sarama.SyncProducer
	logger *slog.Logger
}

func NewKafkaPublisher(prod sarama.SyncProducer, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		prod:   prod,
		logger: logger,
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{
				Key:   []byte("timestamp"),
				Value: []byte(time.Now().UTC().Format(time.RFC3339)),
			},
		},
	}

	partition, offset, err := p.prod.SendMessage(msg)
	if err != nil {
		return errs.Wrapf(err, "publish to %s", topic)
	}

	p.logger.Debug("message published", "topic", topic, "key", key, "partition", partition, "offset", offset)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.prod.Close()
}
