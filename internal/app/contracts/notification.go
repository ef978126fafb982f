package contracts

import "context"

// NotificationPublisher hands a push notification off to the delivery queue.
// Actual delivery happens outside this service.
type NotificationPublisher interface {
	Publish(ctx context.Context, title, body string) error
}
