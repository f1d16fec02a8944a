package middleware

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/dtroode/vanashree/internal/api/http/cookie"
	"github.com/dtroode/vanashree/internal/model"
)

const (
	LoginPath       = "/login"
	LoginRequired   = "Please log in to access this page."
	flashCategory   = "info"
	jsonContentType = "application/json"
)

// RequireAuthenticated guards routes that need a logged-in user.
type RequireAuthenticated struct {
	contextManager model.ContextManager
	jar            *cookie.Jar
}

func NewRequireAuthenticated(contextManager model.ContextManager, jar *cookie.Jar) *RequireAuthenticated {
	return &RequireAuthenticated{contextManager: contextManager, jar: jar}
}

// LoginURL returns the login page address that returns to requestURI.
func LoginURL(requestURI string) string {
	return LoginPath + "?" + url.Values{"next": {requestURI}}.Encode()
}

// Page redirects anonymous callers to the login page.
func (m *RequireAuthenticated) Page(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.contextManager.GetIdentityFromContext(r.Context()).Authenticated {
			next.ServeHTTP(w, r)
			return
		}

		m.jar.PushFlash(w, r, flashCategory, LoginRequired)
		http.Redirect(w, r, LoginURL(r.URL.RequestURI()), http.StatusFound)
	})
}

// JSON answers anonymous callers with 401 and the login address.
func (m *RequireAuthenticated) JSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.contextManager.GetIdentityFromContext(r.Context()).Authenticated {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("Content-Type", jsonContentType)
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":    LoginRequired,
			"redirect": LoginURL(r.URL.RequestURI()),
		})
	})
}
