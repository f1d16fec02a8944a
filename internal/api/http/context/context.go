package context

import (
	"context"

	"github.com/dtroode/vanashree/internal/model"
)

type identityKey struct{}

// Manager stores the resolved request identity on a context.
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// SetIdentityToContext returns a copy of ctx carrying identity.
func (m *Manager) SetIdentityToContext(ctx context.Context, identity model.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// GetIdentityFromContext returns the identity stored by the authentication
// middleware, or an anonymous identity when none is present.
func (m *Manager) GetIdentityFromContext(ctx context.Context) model.Identity {
	identity, ok := ctx.Value(identityKey{}).(model.Identity)
	if !ok {
		return model.Anonymous()
	}
	return identity
}
