// Package rabbit relays storefront messages to RabbitMQ.
package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/dtroode/vanashree/internal/model"
)

const publishTimeout = 5 * time.Second

type Conn struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func Connect(url string) (*Conn, error) {
	c, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}
	ch, err := c.Channel()
	if err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	return &Conn{Conn: c, Ch: ch}, nil
}

func (c *Conn) Close() error {
	if c.Ch != nil {
		_ = c.Ch.Close()
	}
	if c.Conn != nil {
		return c.Conn.Close()
	}
	return nil
}

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

var _ model.ContactPublisher = (*ContactPublisher)(nil)

// ContactPublisher sends contact messages to a durable queue through the
// default exchange.
type ContactPublisher struct {
	ch    channel
	queue string
	now   func() time.Time
}

// NewContactPublisher declares the queue before returning.
func NewContactPublisher(ch channel, queue string) (*ContactPublisher, error) {
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("failed to declare queue %q: %w", queue, err)
	}
	return &ContactPublisher{ch: ch, queue: queue, now: time.Now}, nil
}

func (p *ContactPublisher) PublishContact(ctx context.Context, msg model.ContactMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal contact message: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.ch.PublishWithContext(pubCtx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    uuid.NewString(),
		Type:         "contact.submitted",
		Timestamp:    p.now(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish to %q: %w", p.queue, err)
	}
	return nil
}
