package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/vanashree/internal/model"
)

// SessionManager is a mock of model.SessionManager.
type SessionManager struct {
	mock.Mock
}

func NewSessionManager(t testingT) *SessionManager {
	m := &SessionManager{}
	register(&m.Mock, t)
	return m
}

func (_m *SessionManager) Issue(userID int64, remember bool) (model.Session, string, error) {
	ret := _m.Called(userID, remember)
	return ret.Get(0).(model.Session), ret.String(1), ret.Error(2)
}

func (_m *SessionManager) Parse(token string) (model.Session, error) {
	ret := _m.Called(token)
	return ret.Get(0).(model.Session), ret.Error(1)
}

// SessionResolver is a mock of the HTTP authentication middleware dependency.
type SessionResolver struct {
	mock.Mock
}

func NewSessionResolver(t testingT) *SessionResolver {
	m := &SessionResolver{}
	register(&m.Mock, t)
	return m
}

func (_m *SessionResolver) Resolve(ctx context.Context, token string) model.Identity {
	ret := _m.Called(ctx, token)
	return ret.Get(0).(model.Identity)
}
