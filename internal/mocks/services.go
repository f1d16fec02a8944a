package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/vanashree/internal/model"
)

// AccountService is a mock of handler.AccountService.
type AccountService struct {
	mock.Mock
}

func NewAccountService(t testingT) *AccountService {
	m := &AccountService{}
	register(&m.Mock, t)
	return m
}

func (_m *AccountService) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	ret := _m.Called(ctx, params)
	return ret.Get(0).(model.User), ret.Error(1)
}

// AuthService is a mock of handler.AuthService.
type AuthService struct {
	mock.Mock
}

func NewAuthService(t testingT) *AuthService {
	m := &AuthService{}
	register(&m.Mock, t)
	return m
}

func (_m *AuthService) Login(ctx context.Context, params model.LoginParams) (model.LoginResult, error) {
	ret := _m.Called(ctx, params)
	return ret.Get(0).(model.LoginResult), ret.Error(1)
}

func (_m *AuthService) Logout(ctx context.Context, identity model.Identity) {
	_m.Called(ctx, identity)
}

// CheckoutService is a mock of handler.CheckoutService.
type CheckoutService struct {
	mock.Mock
}

func NewCheckoutService(t testingT) *CheckoutService {
	m := &CheckoutService{}
	register(&m.Mock, t)
	return m
}

func (_m *CheckoutService) CreateCheckoutSession(ctx context.Context, identity model.Identity, items []model.CartItem) (string, error) {
	ret := _m.Called(ctx, identity, items)
	return ret.String(0), ret.Error(1)
}

// ContactService is a mock of handler.ContactService.
type ContactService struct {
	mock.Mock
}

func NewContactService(t testingT) *ContactService {
	m := &ContactService{}
	register(&m.Mock, t)
	return m
}

func (_m *ContactService) Submit(ctx context.Context, msg model.ContactMessage) error {
	ret := _m.Called(ctx, msg)
	return ret.Error(0)
}
