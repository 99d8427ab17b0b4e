package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublisher(t *testing.T) {
	t.Run("message is keyed by order id", func(t *testing.T) {
		w := &fakeWriter{}
		p := newKafkaPublisher(w, zap.NewNop())
		at := time.Date(2025, 9, 20, 10, 0, 0, 0, time.UTC)
		p.now = func() time.Time { return at }

		require.NoError(t, p.PublishDelivered(context.Background(), "o1"))
		require.Len(t, w.msgs, 1)
		require.Equal(t, "o1", string(w.msgs[0].Key))

		var body DeliveredMessage
		require.NoError(t, json.Unmarshal(w.msgs[0].Value, &body))
		require.Equal(t, DeliveredMessage{OrderID: "o1", Event: "order_delivered", DeliveredAt: at}, body)

		require.NoError(t, p.Close())
		require.True(t, w.closed)
	})

	t.Run("write errors are wrapped", func(t *testing.T) {
		cause := errors.New("leader not available")
		p := newKafkaPublisher(&fakeWriter{err: cause}, nil)
		require.ErrorIs(t, p.PublishDelivered(context.Background(), "o1"), cause)
	})
}

func TestBrokersFromEnv(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", " kafka-1:9092, ,kafka-2:9092 ")
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, BrokersFromEnv())

	t.Setenv("KAFKA_BROKERS", "")
	require.Empty(t, BrokersFromEnv())
}

func TestLogPublisher(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := NewLogPublisher(zap.New(core))

	require.NoError(t, p.PublishDelivered(context.Background(), "o9"))
	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "o9", entries[0].ContextMap()["order_id"])
}
