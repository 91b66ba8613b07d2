package client

import (
	"context"

	"ledgerly.io/financemail/internal/core/domain"
)

type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, message any) error
}

type AMQPNotifier struct {
	publisher Publisher
}

func NewAMQPNotifier(publisher Publisher) *AMQPNotifier {
	return &AMQPNotifier{
		publisher: publisher,
	}
}

func (n *AMQPNotifier) NotifyRunCompleted(ctx context.Context, message *domain.RunCompletedMessage) error {
	return n.publisher.Publish(ctx, domain.FinanceExchange, domain.RoutingKeyRunCompleted, message)
}

func (n *AMQPNotifier) NotifyDuplicateDetected(ctx context.Context, message *domain.DuplicateDetectedMessage) error {
	return n.publisher.Publish(ctx, domain.FinanceExchange, domain.RoutingKeyDuplicateDetected, message)
}
