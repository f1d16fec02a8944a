package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dtroode/vanashree/internal/logger"
	"github.com/dtroode/vanashree/internal/model"
)

type Contact struct {
	publisher model.ContactPublisher
	logger    *logger.Logger
	now       func() time.Time
}

// NewContact accepts a nil publisher, in which case messages are only logged.
func NewContact(publisher model.ContactPublisher, logger *logger.Logger) *Contact {
	return &Contact{
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (c *Contact) Submit(ctx context.Context, msg model.ContactMessage) error {
	msg.ReceivedAt = c.now().UTC()

	if c.publisher == nil {
		c.logger.Info("Contact service: message received",
			"name", msg.Name,
			"email", msg.Email,
			"length", len(msg.Message))
		return nil
	}

	if err := c.publisher.PublishContact(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish contact message: %w", err)
	}

	c.logger.Info("Contact service: message published",
		"email", msg.Email)

	return nil
}
