package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Khaoshimself/online-shopping-site/internal/usecase"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Topology names the exchange/queue wiring for order events.
type Topology struct {
	Exchange   string
	RoutingKey string
	Queue      string
}

// RabbitProducer implements usecase.OrderEvents over a topic exchange.
type RabbitProducer struct {
	ch  *amqp.Channel
	top Topology
}

// NewRabbitProducer sets up the exchange, queue, and binding once at startup.
func NewRabbitProducer(ch *amqp.Channel, top Topology) (*RabbitProducer, error) {
	if err := ch.ExchangeDeclare(
		top.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		top.Queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(
		q.Name,
		top.RoutingKey,
		top.Exchange,
		false, // no-wait
		nil,
	); err != nil {
		return nil, fmt.Errorf("queue bind: %w", err)
	}

	if err := ch.Confirm(false); err != nil {
		return nil, fmt.Errorf("enable confirm mode: %w", err)
	}

	return &RabbitProducer{ch: ch, top: top}, nil
}

// OrderPlaced sends the event to the fulfillment exchange.
func (p *RabbitProducer) OrderPlaced(ctx context.Context, msg usecase.OrderPlacedMsg) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // survive broker restarts
		Body:         body,
	}

	if err := p.ch.PublishWithContext(
		ctx,
		p.top.Exchange,
		p.top.RoutingKey,
		false, // mandatory
		false, // immediate
		pub,
	); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	return nil
}

var _ usecase.OrderEvents = (*RabbitProducer)(nil)
