package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/vanashree/internal/api/http/cookie"
	"github.com/dtroode/vanashree/internal/api/http/handler"
	"github.com/dtroode/vanashree/internal/api/http/middleware"
	"github.com/dtroode/vanashree/internal/api/http/view"
	"github.com/dtroode/vanashree/internal/logger"
	"github.com/dtroode/vanashree/internal/model"
)

const serviceName = "storefront"

// Services groups the business operations the routes call.
type Services struct {
	Catalog  handler.CatalogService
	Accounts handler.AccountService
	Auth     handler.AuthService
	Sessions middleware.SessionResolver
	Checkout handler.CheckoutService
	Contact  handler.ContactService
}

// Router wires handlers and middleware into a chi mux.
type Router struct {
	services       Services
	renderer       *view.Renderer
	static         fs.FS
	jar            *cookie.Jar
	contextManager model.ContextManager
	registry       *prometheus.Registry
	publishableKey string
	logger         *logger.Logger
}

func New(
	services Services,
	renderer *view.Renderer,
	static fs.FS,
	jar *cookie.Jar,
	contextManager model.ContextManager,
	registry *prometheus.Registry,
	publishableKey string,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		renderer:       renderer,
		static:         static,
		jar:            jar,
		contextManager: contextManager,
		registry:       registry,
		publishableKey: publishableKey,
		logger:         logger,
	}
}

// Register builds the HTTP handler with every storefront route.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	metrics := middleware.NewMetrics(r.registry, serviceName)
	authenticate := middleware.NewAuthenticate(r.services.Sessions, r.contextManager, r.jar, r.logger)
	requireAuth := middleware.NewRequireAuthenticated(r.contextManager, r.jar)

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(logging.Handle)
	mux.Use(chimw.Recoverer)
	mux.Use(metrics.Handle)

	mux.Get("/health", handler.Health)
	mux.Handle("/metrics", promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
	mux.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(r.static))))

	mux.Group(func(mux chi.Router) {
		mux.Use(authenticate.Handle)
		r.registerPageRoutes(mux, requireAuth)
		r.registerAuthRoutes(mux)
		r.registerCheckoutRoutes(mux, requireAuth)
	})

	return mux
}

func (r *Router) registerPageRoutes(mux chi.Router, requireAuth *middleware.RequireAuthenticated) {
	h := handler.NewPages(r.services.Catalog, r.services.Contact, r.publishableKey, r.renderer, r.jar, r.logger)
	with := r.withIdentity

	mux.Get("/", with(h.Index))
	mux.Get("/products", with(h.Products))
	mux.Get("/product/{id:[0-9]+}", with(h.Product))
	mux.Get("/cart", with(h.Cart))
	mux.With(requireAuth.Page).Get("/checkout", with(h.Checkout))
	mux.Get("/success", with(h.Success))
	mux.Get("/cancel", with(h.Cancel))
	mux.Get("/contact", with(h.ContactForm))
	mux.Post("/contact", with(h.Contact))
	mux.Get("/forgot-password", with(h.ForgotPassword))
}

func (r *Router) registerAuthRoutes(mux chi.Router) {
	h := handler.NewAuth(r.services.Accounts, r.services.Auth, r.renderer, r.jar, r.logger)
	with := r.withIdentity

	mux.Get("/login", with(h.LoginForm))
	mux.Post("/login", with(h.Login))
	mux.Get("/register", with(h.RegisterForm))
	mux.Post("/register", with(h.Register))
	mux.Get("/logout", with(h.Logout))
}

func (r *Router) registerCheckoutRoutes(mux chi.Router, requireAuth *middleware.RequireAuthenticated) {
	h := handler.NewCheckout(r.services.Checkout, r.logger)

	mux.With(requireAuth.JSON).Post("/create-checkout-session", r.withIdentity(h.CreateSession))
}

func (r *Router) withIdentity(h handler.IdentityHandlerFunc) http.HandlerFunc {
	return handler.WithIdentity(r.contextManager, h)
}
