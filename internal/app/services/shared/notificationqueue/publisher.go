// Package notificationqueue publishes push-notification payloads to
// RabbitMQ. Delivery to devices is handled by a separate consumer outside
// this service.
package notificationqueue

import (
	"context"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/contracts"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/constvars"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/exceptions"
)

// Message is the payload stored in RabbitMQ.
type Message struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type publisher struct {
	ch  *amqp.Channel
	log *zap.Logger
}

// NewPublisher opens a channel and declares the durable notification queue
// plus its dead-letter companion.
func NewPublisher(conn *amqp.Connection, log *zap.Logger) (contracts.NotificationPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrQueueDeclare(err)
	}

	for _, queueName := range []string{constvars.NotificationQueueName, constvars.NotificationDeadLetterQueueName} {
		_, err = ch.QueueDeclare(
			queueName,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		)
		if err != nil {
			return nil, exceptions.ErrQueueDeclare(err)
		}
	}

	return &publisher{ch: ch, log: log}, nil
}

func (p *publisher) Publish(ctx context.Context, title, body string) error {
	payload, err := json.Marshal(Message{Title: title, Body: body})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.ch.PublishWithContext(ctx,
		"", // default exchange
		constvars.NotificationQueueName,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         payload,
		},
	)
	if err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	p.log.Info("notificationqueue.Publish enqueued notification",
		zap.String(constvars.LoggingNotificationTitleKey, title),
		zap.String(constvars.LoggingNotificationQueueNameKey, constvars.NotificationQueueName),
	)
	return nil
}
