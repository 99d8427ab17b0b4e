package usecase

import (
	"context"

	"thecodecup/internal/domain/entities"
	"thecodecup/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// DeliveredSource is what the relay needs from the Store.
type DeliveredSource interface {
	SubscribeQueued(kinds ...EventKind) (<-chan Event, func())
	Preferences() entities.Preferences
}

// RelayDelivered forwards order_delivered events to publisher while the user
// has notifications enabled. Events queue up behind a slow publisher rather
// than being dropped. It returns when ctx ends or the stream closes.
func RelayDelivered(ctx context.Context, source DeliveredSource, publisher interfaces.IDeliveredPublisher, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "delivered-relay"))

	events, cancel := source.SubscribeQueued(EventOrderDelivered)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			if e.Kind != EventOrderDelivered {
				continue
			}
			if !source.Preferences().NotificationsEnabled {
				logger.Debug("notifications disabled, skipping", zap.String("order_id", e.OrderID))
				continue
			}
			if err := publisher.PublishDelivered(ctx, e.OrderID); err != nil {
				logger.Warn("publishing delivered event failed", zap.String("order_id", e.OrderID), zap.Error(err))
			}
		}
	}
}
