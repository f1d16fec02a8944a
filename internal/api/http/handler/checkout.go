package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dtroode/vanashree/internal/logger"
	"github.com/dtroode/vanashree/internal/model"
)

// Checkout serves the JSON endpoint the cart page calls.
type Checkout struct {
	checkout CheckoutService
	logger   *logger.Logger
}

func NewCheckout(checkout CheckoutService, logger *logger.Logger) *Checkout {
	return &Checkout{checkout: checkout, logger: logger}
}

// CreateSession answers {"id": ...} on success and 403 {"error": ...} when
// the checkout cannot be created.
func (h *Checkout) CreateSession(w http.ResponseWriter, r *http.Request, identity model.Identity) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req checkoutRequest
	if err := decodeCheckoutRequest(r, &req); err != nil {
		h.logger.Debug("Checkout handler: malformed request",
			"user_id", identity.UserID,
			"error", err.Error())
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	items, err := req.cartItems()
	if err != nil {
		h.logger.Debug("Checkout handler: malformed cart",
			"user_id", identity.UserID,
			"error", err.Error())
		writeJSON(w, http.StatusForbidden, map[string]string{"error": err.Error()})
		return
	}

	sessionID, err := h.checkout.CreateCheckoutSession(r.Context(), identity, items)
	if err != nil {
		if !errors.Is(err, model.ErrCheckoutFailed) {
			h.logger.Error("Checkout handler: unexpected error",
				"user_id", identity.UserID,
				"error", err.Error())
		}
		writeJSON(w, http.StatusForbidden, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"id": sessionID})
}

// decodeCheckoutRequest fails only for unreadable or syntactically invalid
// bodies. A body that is valid JSON but not an object yields an empty cart.
func decodeCheckoutRequest(r *http.Request, req *checkoutRequest) error {
	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return err
		}
		*req = checkoutRequest{}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
