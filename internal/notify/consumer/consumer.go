package consumer

import (
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"agri-connect/internal/notify/api"
	"agri-connect/internal/notify/domain"
	"agri-connect/internal/notify/rmq"
)

const pushQueue = "notification_push"

// PushConsumer forwards created notifications to connected websocket
// clients. Users without a live connection are skipped; they pick the
// notification up on their next poll.
type PushConsumer struct {
	channel *amqp.Channel
	ws      *api.WSManager
}

func NewPushConsumer(ch *amqp.Channel, ws *api.WSManager) *PushConsumer {
	return &PushConsumer{channel: ch, ws: ws}
}

func (c *PushConsumer) Start() error {
	if err := c.channel.ExchangeDeclare(
		rmq.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	if _, err := c.channel.QueueDeclare(
		pushQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := c.channel.QueueBind(pushQueue, "notification.#", rmq.Exchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	msgs, err := c.channel.Consume(
		pushQueue,
		"",
		false, // manual acknowledgment
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			c.handle(msg)
		}
	}()

	log.Println("notification push consumer started")
	return nil
}

func (c *PushConsumer) handle(msg amqp.Delivery) {
	var n domain.Notification
	if err := json.Unmarshal(msg.Body, &n); err != nil {
		log.Printf("[notification_push] invalid JSON: %v", err)
		msg.Nack(false, false) // don't requeue malformed messages
		return
	}

	payload := map[string]interface{}{
		"type": "notification",
		"data": n,
	}
	if err := c.ws.SendToUser(n.UserID, payload); err != nil {
		log.Printf("[notification_push] push to %s failed: %v", n.UserID, err)
	}

	msg.Ack(false)
}
