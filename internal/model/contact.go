package model

import (
	"context"
	"time"
)

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}

// ContactPublisher hands contact messages to a downstream consumer.
type ContactPublisher interface {
	PublishContact(ctx context.Context, msg ContactMessage) error
}
