package model

import (
	"context"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the only currency the storefront charges in.
const DefaultCurrency = "inr"

// CartItem is a client-submitted cart entry. It is never persisted.
type CartItem struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Quantity    int64           `json:"quantity"`
}

// LineItem is a cart entry converted for the payment processor.
type LineItem struct {
	Name        string
	Description string
	Image       string
	// UnitAmount is expressed in minor currency units.
	UnitAmount int64
	Quantity   int64
}

// CheckoutRequest describes a hosted one-time payment session.
type CheckoutRequest struct {
	Currency          string
	LineItems         []LineItem
	SuccessURL        string
	CancelURL         string
	ClientReferenceID string
}

// PaymentGateway creates hosted checkout sessions at the payment processor.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, error)
}
