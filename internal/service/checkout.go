package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dtroode/vanashree/internal/logger"
	"github.com/dtroode/vanashree/internal/model"
)

var minorUnits = decimal.NewFromInt(100)

type Checkout struct {
	gateway    model.PaymentGateway
	currency   string
	successURL string
	cancelURL  string
	logger     *logger.Logger
}

func NewCheckout(gateway model.PaymentGateway, baseURL string, logger *logger.Logger) *Checkout {
	baseURL = strings.TrimRight(baseURL, "/")
	return &Checkout{
		gateway:    gateway,
		currency:   model.DefaultCurrency,
		successURL: baseURL + "/success",
		cancelURL:  baseURL + "/cancel",
		logger:     logger,
	}
}

// CreateCheckoutSession converts the cart into line items and opens a hosted
// payment session. Every failure is a *model.CheckoutError.
func (c *Checkout) CreateCheckoutSession(ctx context.Context, identity model.Identity, items []model.CartItem) (string, error) {
	if !identity.Authenticated {
		return "", model.NewCheckoutError("authentication required", nil)
	}

	lineItems, err := LineItems(items)
	if err != nil {
		c.logger.Info("Checkout service: rejected cart",
			"user_id", identity.UserID,
			"error", err.Error())
		return "", err
	}

	sessionID, err := c.gateway.CreateCheckoutSession(ctx, model.CheckoutRequest{
		Currency:          c.currency,
		LineItems:         lineItems,
		SuccessURL:        c.successURL,
		CancelURL:         c.cancelURL,
		ClientReferenceID: strconv.FormatInt(identity.UserID, 10),
	})
	if err != nil {
		c.logger.Error("Checkout service: payment processor failed",
			"user_id", identity.UserID,
			"items", len(lineItems),
			"error", err.Error())
		return "", model.NewCheckoutError("payment processor rejected the request", err)
	}

	c.logger.Info("Checkout service: checkout session created",
		"user_id", identity.UserID,
		"session_id", sessionID,
		"items", len(lineItems))

	return sessionID, nil
}

// LineItems validates the cart. Unit amounts are price × 100 truncated
// toward zero.
func LineItems(items []model.CartItem) ([]model.LineItem, error) {
	if len(items) == 0 {
		return nil, model.NewCheckoutError("cart is empty", nil)
	}

	out := make([]model.LineItem, 0, len(items))
	for i, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, model.NewCheckoutError(fmt.Sprintf("item %d: name is required", i+1), nil)
		}
		if item.Quantity < 1 {
			return nil, model.NewCheckoutError(fmt.Sprintf("item %d: quantity must be at least 1", i+1), nil)
		}
		if !item.Price.IsPositive() {
			return nil, model.NewCheckoutError(fmt.Sprintf("item %d: price must be positive", i+1), nil)
		}

		unitAmount := item.Price.Mul(minorUnits).Truncate(0)
		if !unitAmount.IsPositive() {
			return nil, model.NewCheckoutError(fmt.Sprintf("item %d: price is below the smallest unit", i+1), nil)
		}

		out = append(out, model.LineItem{
			Name:        name,
			Description: item.Description,
			Image:       item.Image,
			UnitAmount:  unitAmount.IntPart(),
			Quantity:    item.Quantity,
		})
	}

	return out, nil
}
