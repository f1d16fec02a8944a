package handler

import (
	"context"
	"net/http"

	"github.com/dtroode/vanashree/internal/api/http/cookie"
	"github.com/dtroode/vanashree/internal/api/http/view"
	"github.com/dtroode/vanashree/internal/logger"
	"github.com/dtroode/vanashree/internal/model"
)

// CatalogService answers product queries.
type CatalogService interface {
	List() []model.Product
	Get(id int) (model.Product, error)
	Featured(n int) []model.Product
}

// AccountService registers new accounts.
type AccountService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.User, error)
}

// AuthService logs users in and out.
type AuthService interface {
	Login(ctx context.Context, params model.LoginParams) (model.LoginResult, error)
	Logout(ctx context.Context, identity model.Identity)
}

// CheckoutService opens hosted payment sessions.
type CheckoutService interface {
	CreateCheckoutSession(ctx context.Context, identity model.Identity, items []model.CartItem) (string, error)
}

// ContactService accepts contact form messages.
type ContactService interface {
	Submit(ctx context.Context, msg model.ContactMessage) error
}

const (
	flashSuccess = "success"
	flashDanger  = "danger"
)

// IdentityHandlerFunc is an HTTP handler that receives the resolved caller.
type IdentityHandlerFunc func(w http.ResponseWriter, r *http.Request, identity model.Identity)

// WithIdentity adapts h to http.HandlerFunc, reading the identity the
// authentication middleware stored on the request context.
func WithIdentity(contextManager model.ContextManager, h IdentityHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h(w, r, contextManager.GetIdentityFromContext(r.Context()))
	}
}

type responder struct {
	renderer *view.Renderer
	jar      *cookie.Jar
	logger   *logger.Logger
}

func (h responder) render(w http.ResponseWriter, r *http.Request, name, title string, identity model.Identity, data any) {
	page := view.Page{
		Title:    title,
		Identity: identity,
		Flashes:  h.jar.PopFlashes(w, r),
		Data:     data,
	}

	if err := h.renderer.Render(w, http.StatusOK, name, page); err != nil {
		h.logger.Error("Handler: failed to render page",
			"page", name,
			"error", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h responder) flashRedirect(w http.ResponseWriter, r *http.Request, category, message, target string) {
	h.jar.PushFlash(w, r, category, message)
	http.Redirect(w, r, target, http.StatusFound)
}
