package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"thecodecup/internal/usecase/interfaces"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const TopicOrderDelivered = "order-delivered"

// DeliveredMessage is the JSON value written for every delivered order.
type DeliveredMessage struct {
	OrderID     string    `json:"order_id"`
	Event       string    `json:"event"`
	DeliveredAt time.Time `json:"delivered_at"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes delivered events to a Kafka topic keyed by order id,
// so every event of an order lands on the same partition.
type KafkaPublisher struct {
	writer messageWriter
	logger *zap.Logger
	now    func() time.Time
}

var _ interfaces.IDeliveredPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string, topic string, logger *zap.Logger) *KafkaPublisher {
	if topic == "" {
		topic = TopicOrderDelivered
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
	return newKafkaPublisher(w, logger)
}

func newKafkaPublisher(w messageWriter, logger *zap.Logger) *KafkaPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &KafkaPublisher{writer: w, logger: logger.With(zap.String("component", "kafka-publisher")), now: time.Now}
}

// BrokersFromEnv reads KAFKA_BROKERS as a comma separated list. Empty means
// Kafka is not configured.
func BrokersFromEnv() []string {
	var out []string
	for _, b := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func (p *KafkaPublisher) PublishDelivered(ctx context.Context, orderID string) error {
	value, err := json.Marshal(DeliveredMessage{
		OrderID:     orderID,
		Event:       "order_delivered",
		DeliveredAt: p.now().UTC(),
	})
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(orderID),
		Value: value,
		Time:  p.now(),
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write delivered message: %w", err)
	}
	p.logger.Debug("delivered event published", zap.String("order_id", orderID))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
