package interfaces

import "context"

// IDeliveredPublisher forwards "order delivered" events to a presentation
// collaborator (push notification, message topic, log).
type IDeliveredPublisher interface {
	PublishDelivered(ctx context.Context, orderID string) error
}
