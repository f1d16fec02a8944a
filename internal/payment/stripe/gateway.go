// Package stripe creates hosted checkout sessions with Stripe Checkout.
package stripe

import (
	"context"
	"errors"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"

	"github.com/dtroode/vanashree/internal/logger"
	"github.com/dtroode/vanashree/internal/model"
)

type checkoutSessionAPI interface {
	New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

var _ model.PaymentGateway = (*Gateway)(nil)

type Gateway struct {
	sessions checkoutSessionAPI
	logger   *logger.Logger
}

// NewGateway returns a gateway authenticated with the secret key.
func NewGateway(secretKey string, logger *logger.Logger) *Gateway {
	return NewGatewayWithAPI(&session.Client{
		B:   stripe.GetBackend(stripe.APIBackend),
		Key: secretKey,
	}, logger)
}

// NewGatewayWithAPI allows injecting a fake session API (used in tests).
func NewGatewayWithAPI(api checkoutSessionAPI, logger *logger.Logger) *Gateway {
	return &Gateway{
		sessions: api,
		logger:   logger,
	}
}

func (g *Gateway) CreateCheckoutSession(ctx context.Context, req model.CheckoutRequest) (string, error) {
	params := buildParams(req)
	params.Context = ctx

	s, err := g.sessions.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) {
			g.logger.Warn("Stripe gateway: request rejected",
				"type", stripeErr.Type,
				"code", stripeErr.Code,
				"request_id", stripeErr.RequestID)
			return "", fmt.Errorf("stripe: %s", stripeErr.Msg)
		}
		return "", fmt.Errorf("stripe: %w", err)
	}

	return s.ID, nil
}

func buildParams(req model.CheckoutRequest) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.LineItems))
	for _, item := range req.LineItems {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Description != "" {
			product.Description = stripe.String(item.Description)
		}
		if item.Image != "" {
			product.Images = stripe.StringSlice([]string{item.Image})
		}

		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(req.Currency),
				UnitAmount:  stripe.Int64(item.UnitAmount),
				ProductData: product,
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:          lineItems,
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
	}
	if req.ClientReferenceID != "" {
		params.ClientReferenceID = stripe.String(req.ClientReferenceID)
	}

	return params
}
