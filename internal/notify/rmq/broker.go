package rmq

import (
	"context"

	"agri-connect/internal/notify/domain"
	"agri-connect/internal/shared/mq"
)

const (
	// Exchange carries created-notification events for realtime push.
	Exchange = "notify_topic"

	// RoutingKeyCreated is suffixed with the notification category so
	// consumers can bind selectively.
	RoutingKeyCreated = "notification.created."
)

// Broker publishes created notifications on the notify exchange.
type Broker struct {
	pub *mq.Publisher
}

func NewBroker(pub *mq.Publisher) *Broker {
	return &Broker{pub: pub}
}

func (b *Broker) NotificationCreated(ctx context.Context, n domain.Notification) error {
	return b.pub.PublishJSON(ctx, Exchange, RoutingKeyCreated+n.Type, n)
}
