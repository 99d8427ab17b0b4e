package notifications

import (
	"context"

	"thecodecup/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogPublisher stands in for a push channel when no broker is configured.
type LogPublisher struct {
	logger *zap.Logger
}

var _ interfaces.IDeliveredPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogPublisher{logger: logger.With(zap.String("component", "log-publisher"))}
}

func (p *LogPublisher) PublishDelivered(_ context.Context, orderID string) error {
	p.logger.Info("Your order has been delivered", zap.String("order_id", orderID))
	return nil
}
