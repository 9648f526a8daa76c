//go:build unit

package messaging_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"ticket-marketplace/internal/infra/messaging"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestKafkaPublisher_Publish(t *testing.T) {
	t.Run("success: payload sent with its key", func(t *testing.T) {
		prod := mocks.NewSyncProducer(t, nil)
		prod.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
			assert.Equal(t, "ticket.purchased", msg.Topic)
			key, err := msg.Key.Encode()
			require.NoError(t, err)
			assert.Equal(t, "event-1", string(key))
			value, err := msg.Value.Encode()
			require.NoError(t, err)
			assert.JSONEq(t, `{"ticketId":"t-1"}`, string(value))
			return nil
		})

		publisher := messaging.NewKafkaPublisher(prod, discardLogger())
		err := publisher.Publish(context.Background(), "ticket.purchased", "event-1", []byte(`{"ticketId":"t-1"}`))

		require.NoError(t, err)
		require.NoError(t, publisher.Close())
	})

	t.Run("error: broker failure is returned", func(t *testing.T) {
		prod := mocks.NewSyncProducer(t, nil)
		prod.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)

		publisher := messaging.NewKafkaPublisher(prod, discardLogger())
		err := publisher.Publish(context.Background(), "offer.granted", "event-1", []byte(`{}`))

		require.Error(t, err)
		assert.True(t, errors.Is(err, sarama.ErrNotLeaderForPartition))
		require.NoError(t, publisher.Close())
	})

	t.Run("error: cancelled context sends nothing", func(t *testing.T) {
		prod := mocks.NewSyncProducer(t, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		publisher := messaging.NewKafkaPublisher(prod, discardLogger())
		err := publisher.Publish(ctx, "offer.granted", "event-1", []byte(`{}`))

		assert.ErrorIs(t, err, context.Canceled)
		require.NoError(t, publisher.Close())
	})
}
