package amqp

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	log "github.com/sirupsen/logrus"
)

// MessageHandler handles one delivery; it owns the ack/nack decision.
type MessageHandler interface {
	Handle(ctx context.Context, delivery *amqp.Delivery)
}

// Consumer consumes messages from a RabbitMQ queue and hands them to the
// handler one at a time.
type Consumer struct {
	client  *Client
	handler MessageHandler
}

func NewConsumer(client *Client, handler MessageHandler) *Consumer {
	return &Consumer{
		client:  client,
		handler: handler,
	}
}

// Consume starts consuming messages from the queue until the context is
// cancelled. Deliveries are acked manually by the handler.
func (c *Consumer) Consume(ctx context.Context, queueName string) error {
	ch := c.client.Channel()

	err := ch.Qos(
		1,     // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	msgs, err := ch.Consume(
		queueName,
		"",    // consumer tag (auto-generated)
		false, // auto-ack (we'll manually ack)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.WithField("queue", queueName).Info("Started consuming messages")

	go func() {
		for {
			select {
			case <-ctx.Done():
				log.Info("Consumer stopped due to context cancellation")
				return
			case msg, ok := <-msgs:
				if !ok {
					log.Warn("Message channel closed")
					return
				}
				log.WithFields(log.Fields{
					"routingKey": msg.RoutingKey,
					"messageId":  msg.MessageId,
				}).Debug("Processing message")
				c.handler.Handle(ctx, &msg)
			}
		}
	}()

	return nil
}
