package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dtroode/vanashree/internal/api/http/cookie"
	"github.com/dtroode/vanashree/internal/api/http/view"
	"github.com/dtroode/vanashree/internal/logger"
	"github.com/dtroode/vanashree/internal/model"
)

const (
	featuredCount = 4
	contactThanks = "Thank you for your message! We will get back to you soon."
)

// Pages serves the catalog, cart and informational pages.
type Pages struct {
	responder
	catalog        CatalogService
	contact        ContactService
	publishableKey string
}

func NewPages(
	catalog CatalogService,
	contact ContactService,
	publishableKey string,
	renderer *view.Renderer,
	jar *cookie.Jar,
	logger *logger.Logger,
) *Pages {
	return &Pages{
		responder:      responder{renderer: renderer, jar: jar, logger: logger},
		catalog:        catalog,
		contact:        contact,
		publishableKey: publishableKey,
	}
}

type productsPage struct {
	Products []model.Product
}

type productPage struct {
	Product model.Product
}

type checkoutPage struct {
	PublishableKey string
}

type contactPage struct {
	Name    string
	Email   string
	Message string
}

func (h *Pages) Index(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	h.render(w, r, "index", "Home", identity, productsPage{Products: h.catalog.Featured(featuredCount)})
}

func (h *Pages) Products(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	h.render(w, r, "products", "Products", identity, productsPage{Products: h.catalog.List()})
}

// Product redirects to the product list when the id is unknown.
func (h *Pages) Product(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Redirect(w, r, "/products", http.StatusFound)
		return
	}

	product, err := h.catalog.Get(id)
	if errors.Is(err, model.ErrNotFound) {
		h.logger.Debug("Pages handler: product not found",
			"product_id", id)
		http.Redirect(w, r, "/products", http.StatusFound)
		return
	}
	if err != nil {
		h.logger.Error("Pages handler: failed to get product",
			"product_id", id,
			"error", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "product_detail", product.Name, identity, productPage{Product: product})
}

func (h *Pages) Cart(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	h.render(w, r, "cart", "Cart", identity, nil)
}

func (h *Pages) Checkout(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	h.render(w, r, "checkout", "Checkout", identity, checkoutPage{PublishableKey: h.publishableKey})
}

func (h *Pages) Success(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	h.render(w, r, "success", "Order confirmed", identity, nil)
}

func (h *Pages) Cancel(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	h.render(w, r, "cancel", "Payment cancelled", identity, nil)
}

func (h *Pages) ForgotPassword(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	h.render(w, r, "forgot_password", "Forgot password", identity, nil)
}

func (h *Pages) ContactForm(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	h.render(w, r, "contact", "Contact", identity, contactPage{})
}

// Contact relays the message. Delivery failures are logged and the visitor
// still sees the thank-you message.
func (h *Pages) Contact(w http.ResponseWriter, r *http.Request, _ model.Identity) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	form := parseContactForm(r)

	var vErr *model.ValidationError
	if err := form.validate(); errors.As(err, &vErr) {
		h.flashRedirect(w, r, flashDanger, vErr.Message, "/contact")
		return
	}

	err := h.contact.Submit(r.Context(), model.ContactMessage{
		Name:    form.Name,
		Email:   form.Email,
		Message: form.Message,
	})
	if err != nil {
		h.logger.Warn("Pages handler: contact message not delivered",
			"email", form.Email,
			"error", err.Error())
	}

	h.flashRedirect(w, r, flashSuccess, contactThanks, "/contact")
}

// Health reports liveness.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte("ok"))
}
