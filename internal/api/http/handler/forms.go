package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dtroode/vanashree/internal/model"
)

const maxBodyBytes = 1 << 20

type loginForm struct {
	Email    string
	Password string
	Remember bool
	Next     string
}

func parseLoginForm(r *http.Request) loginForm {
	return loginForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
		Remember: r.PostFormValue("remember") != "",
		Next:     r.URL.Query().Get("next"),
	}
}

func (f loginForm) validate() error {
	switch {
	case f.Email == "":
		return model.NewValidationError("email", "Email is required")
	case f.Password == "":
		return model.NewValidationError("password", "Password is required")
	case !looksLikeEmail(f.Email):
		return model.NewValidationError("email", "Please enter a valid email address")
	}
	return nil
}

type registerForm struct {
	Username string
	Email    string
	Password string
}

func parseRegisterForm(r *http.Request) registerForm {
	return registerForm{
		Username: strings.TrimSpace(r.PostFormValue("username")),
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
	}
}

func (f registerForm) validate() error {
	if f.Username == "" || f.Email == "" || f.Password == "" {
		return model.NewValidationError("form", "Please fill in all fields")
	}
	if !looksLikeEmail(f.Email) {
		return model.NewValidationError("email", "Please enter a valid email address")
	}
	return nil
}

type contactForm struct {
	Name    string
	Email   string
	Message string
}

func parseContactForm(r *http.Request) contactForm {
	return contactForm{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}
}

func (f contactForm) validate() error {
	if f.Name == "" || f.Email == "" || f.Message == "" {
		return model.NewValidationError("form", "Please fill in all fields")
	}
	if !looksLikeEmail(f.Email) {
		return model.NewValidationError("email", "Please enter a valid email address")
	}
	return nil
}

type checkoutItem struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Quantity    int64           `json:"quantity"`
}

type checkoutRequest struct {
	Items json.RawMessage `json:"items"`
}

// cartItems converts the submitted items. Type or shape errors are
// checkout failures naming the offending item.
func (req checkoutRequest) cartItems() ([]model.CartItem, error) {
	var raw []json.RawMessage
	if len(req.Items) > 0 {
		if err := json.Unmarshal(req.Items, &raw); err != nil {
			return nil, model.NewCheckoutError("items must be a list", err)
		}
	}

	items := make([]model.CartItem, 0, len(raw))
	for i, r := range raw {
		var it checkoutItem
		if err := json.Unmarshal(r, &it); err != nil {
			return nil, model.NewCheckoutError(fmt.Sprintf("item %d: malformed item", i+1), err)
		}
		items = append(items, model.CartItem{
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Image:       it.Image,
			Quantity:    it.Quantity,
		})
	}
	return items, nil
}

// looksLikeEmail accepts local@domain.tld: one '@', a non-empty local
// part and a dotted domain with no empty labels at either end.
func looksLikeEmail(s string) bool {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || strings.Contains(domain, "@") || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1 && !strings.HasPrefix(domain, ".")
}

// safeNext returns target when it is a path on this site, otherwise "/".
func safeNext(target string) string {
	if target == "" || !strings.HasPrefix(target, "/") ||
		strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return "/"
	}

	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	return target
}
