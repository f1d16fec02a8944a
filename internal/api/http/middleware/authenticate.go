package middleware

import (
	"context"
	"net/http"

	"github.com/dtroode/vanashree/internal/api/http/cookie"
	"github.com/dtroode/vanashree/internal/logger"
	"github.com/dtroode/vanashree/internal/model"
)

// SessionResolver maps session tokens to identities.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) model.Identity
}

// Authenticate resolves the session cookie on every request and stores the
// identity in the request context. It never rejects a request.
type Authenticate struct {
	resolver       SessionResolver
	contextManager model.ContextManager
	jar            *cookie.Jar
	logger         *logger.Logger
}

func NewAuthenticate(resolver SessionResolver, contextManager model.ContextManager, jar *cookie.Jar, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		resolver:       resolver,
		contextManager: contextManager,
		jar:            jar,
		logger:         logger,
	}
}

func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := model.Anonymous()

		if token := cookie.SessionToken(r); token != "" {
			identity = m.resolver.Resolve(r.Context(), token)
			if !identity.Authenticated {
				m.logger.Debug("Authenticate middleware: dropping stale session cookie",
					"path", r.URL.Path)
				m.jar.ClearSession(w)
			}
		}

		ctx := m.contextManager.SetIdentityToContext(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
