package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtroode/vanashree/internal/logger"
	"github.com/dtroode/vanashree/internal/model"
)

// Authenticator checks login credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (model.User, error)
}

type Auth struct {
	accounts  Authenticator
	userStore model.UserStore
	sessions  model.SessionManager
	logger    *logger.Logger
}

func NewAuth(
	accounts Authenticator,
	userStore model.UserStore,
	sessions model.SessionManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		accounts:  accounts,
		userStore: userStore,
		sessions:  sessions,
		logger:    logger,
	}
}

// Login verifies credentials and issues a signed session token.
func (a *Auth) Login(ctx context.Context, params model.LoginParams) (model.LoginResult, error) {
	a.logger.Debug("Auth service: login attempt",
		"email", params.Email,
		"remember", params.Remember)

	user, err := a.accounts.Authenticate(ctx, params.Email, params.Password)
	if errors.Is(err, model.ErrInvalidCredentials) {
		a.logger.Info("Auth service: invalid credentials",
			"email", params.Email)
		return model.LoginResult{}, err
	}
	if err != nil {
		return model.LoginResult{}, fmt.Errorf("failed to authenticate: %w", err)
	}

	session, token, err := a.sessions.Issue(user.ID, params.Remember)
	if err != nil {
		a.logger.Error("Auth service: failed to issue session",
			"user_id", user.ID,
			"error", err.Error())
		return model.LoginResult{}, fmt.Errorf("failed to issue session: %w", err)
	}

	a.logger.Info("Auth service: user logged in",
		"user_id", user.ID,
		"session_id", session.ID)

	return model.LoginResult{
		User:    user,
		Session: session,
		Token:   token,
	}, nil
}

// Resolve maps a session token to the caller's identity. Any token that
// cannot be verified, or whose user no longer exists, is anonymous.
func (a *Auth) Resolve(ctx context.Context, token string) model.Identity {
	if token == "" {
		return model.Anonymous()
	}

	session, err := a.sessions.Parse(token)
	if err != nil {
		a.logger.Debug("Auth service: rejected session token",
			"error", err.Error())
		return model.Anonymous()
	}

	user, err := a.userStore.GetByID(ctx, session.UserID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			a.logger.Warn("Auth service: failed to load session user",
				"user_id", session.UserID,
				"error", err.Error())
		}
		return model.Anonymous()
	}

	return model.Identity{
		UserID:        user.ID,
		Username:      user.Username,
		Authenticated: true,
	}
}

// Logout records the end of a session. Tokens are stateless, so the caller
// clears the cookie.
func (a *Auth) Logout(_ context.Context, identity model.Identity) {
	if !identity.Authenticated {
		return
	}
	a.logger.Info("Auth service: user logged out",
		"user_id", identity.UserID)
}
