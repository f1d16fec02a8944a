package mocks

import (
	"context"
	"io"
	"net"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/vanashree/internal/model"
)

// PaymentGateway is a mock of model.PaymentGateway.
type PaymentGateway struct {
	mock.Mock
}

func NewPaymentGateway(t testingT) *PaymentGateway {
	m := &PaymentGateway{}
	register(&m.Mock, t)
	return m
}

func (_m *PaymentGateway) CreateCheckoutSession(ctx context.Context, req model.CheckoutRequest) (string, error) {
	ret := _m.Called(ctx, req)
	return ret.String(0), ret.Error(1)
}

// ContactPublisher is a mock of model.ContactPublisher.
type ContactPublisher struct {
	mock.Mock
}

func NewContactPublisher(t testingT) *ContactPublisher {
	m := &ContactPublisher{}
	register(&m.Mock, t)
	return m
}

func (_m *ContactPublisher) PublishContact(ctx context.Context, msg model.ContactMessage) error {
	ret := _m.Called(ctx, msg)
	return ret.Error(0)
}

// ObjectSource is a mock of model.ObjectSource.
type ObjectSource struct {
	mock.Mock
}

func NewObjectSource(t testingT) *ObjectSource {
	m := &ObjectSource{}
	register(&m.Mock, t)
	return m
}

func (_m *ObjectSource) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	ret := _m.Called(ctx, key)
	rc, _ := ret.Get(0).(io.ReadCloser)
	return rc, ret.Error(1)
}

func (_m *ObjectSource) Upload(ctx context.Context, key string, reader io.Reader, size int64) error {
	ret := _m.Called(ctx, key, reader, size)
	return ret.Error(0)
}

func (_m *ObjectSource) Exists(ctx context.Context, key string) (bool, error) {
	ret := _m.Called(ctx, key)
	return ret.Bool(0), ret.Error(1)
}

// SecurityLayer is a mock of model.SecurityLayer.
type SecurityLayer struct {
	mock.Mock
}

func NewSecurityLayer(t testingT) *SecurityLayer {
	m := &SecurityLayer{}
	register(&m.Mock, t)
	return m
}

func (_m *SecurityLayer) Listen(protocol, addr string) (net.Listener, error) {
	ret := _m.Called(protocol, addr)
	ln, _ := ret.Get(0).(net.Listener)
	return ln, ret.Error(1)
}
