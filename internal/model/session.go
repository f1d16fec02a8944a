package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Session is a signed reference to a logged-in user.
type Session struct {
	ID        uuid.UUID
	UserID    int64
	Remember  bool
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// SessionManager issues and verifies signed session tokens.
type SessionManager interface {
	Issue(userID int64, remember bool) (Session, string, error)
	Parse(token string) (Session, error)
}

// Identity is the resolved caller of a request. The zero value is anonymous.
type Identity struct {
	UserID        int64
	Username      string
	Authenticated bool
}

// Anonymous returns an unauthenticated identity.
func Anonymous() Identity {
	return Identity{}
}

// ContextManager stores the resolved identity on a request context.
type ContextManager interface {
	SetIdentityToContext(ctx context.Context, identity Identity) context.Context
	GetIdentityFromContext(ctx context.Context) Identity
}
