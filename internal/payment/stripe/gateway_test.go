package stripe

import (
	"context"
	"errors"
	"testing"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/vanashree/internal/model"
	"github.com/dtroode/vanashree/internal/testutil"
)

type ctxKey struct{}

type fakeSessions struct {
	params *stripe.CheckoutSessionParams
	id     string
	err    error
}

func (f *fakeSessions) New(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.CheckoutSession{ID: f.id}, nil
}

func request() model.CheckoutRequest {
	return model.CheckoutRequest{
		Currency: "inr",
		LineItems: []model.LineItem{
			{Name: "Copper Water Bottle", Description: "One litre", Image: "http://x/bottle.jpg", UnitAmount: 89999, Quantity: 1},
			{Name: "Jute Bag", UnitAmount: 34900, Quantity: 3},
		},
		SuccessURL:        "http://localhost:5000/success",
		CancelURL:         "http://localhost:5000/cancel",
		ClientReferenceID: "42",
	}
}

func TestGateway_CreateCheckoutSession(t *testing.T) {
	ctx := context.WithValue(context.Background(), ctxKey{}, "req")
	api := &fakeSessions{id: "cs_test_a1"}
	g := NewGatewayWithAPI(api, testutil.MakeNoopLogger())

	id, err := g.CreateCheckoutSession(ctx, request())
	require.NoError(t, err)
	assert.Equal(t, "cs_test_a1", id)

	p := api.params
	require.NotNil(t, p)
	assert.Equal(t, ctx, p.Context)
	assert.Equal(t, "payment", *p.Mode)
	require.Len(t, p.PaymentMethodTypes, 1)
	assert.Equal(t, "card", *p.PaymentMethodTypes[0])
	assert.Equal(t, "http://localhost:5000/success", *p.SuccessURL)
	assert.Equal(t, "http://localhost:5000/cancel", *p.CancelURL)
	assert.Equal(t, "42", *p.ClientReferenceID)

	require.Len(t, p.LineItems, 2)
	first := p.LineItems[0]
	assert.Equal(t, "inr", *first.PriceData.Currency)
	assert.Equal(t, int64(89999), *first.PriceData.UnitAmount)
	assert.Equal(t, int64(1), *first.Quantity)
	assert.Equal(t, "Copper Water Bottle", *first.PriceData.ProductData.Name)
	assert.Equal(t, "One litre", *first.PriceData.ProductData.Description)
	require.Len(t, first.PriceData.ProductData.Images, 1)
	assert.Equal(t, "http://x/bottle.jpg", *first.PriceData.ProductData.Images[0])

	second := p.LineItems[1]
	assert.Nil(t, second.PriceData.ProductData.Description)
	assert.Empty(t, second.PriceData.ProductData.Images)
	assert.Equal(t, int64(3), *second.Quantity)
}

func TestGateway_CreateCheckoutSession_Errors(t *testing.T) {
	t.Run("stripe error exposes message only", func(t *testing.T) {
		api := &fakeSessions{err: &stripe.Error{
			Type:      stripe.ErrorTypeInvalidRequest,
			Msg:       "Invalid API Key provided",
			RequestID: "req_1",
		}}
		g := NewGatewayWithAPI(api, testutil.MakeNoopLogger())

		_, err := g.CreateCheckoutSession(context.Background(), request())
		assert.EqualError(t, err, "stripe: Invalid API Key provided")
	})

	t.Run("transport error is wrapped", func(t *testing.T) {
		cause := errors.New("dial tcp: timeout")
		g := NewGatewayWithAPI(&fakeSessions{err: cause}, testutil.MakeNoopLogger())

		_, err := g.CreateCheckoutSession(context.Background(), request())
		assert.ErrorIs(t, err, cause)
	})
}

func TestNewGateway(t *testing.T) {
	g := NewGateway("sk_test_x", testutil.MakeNoopLogger())
	require.NotNil(t, g.sessions)
}
