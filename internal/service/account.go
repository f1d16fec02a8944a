package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dtroode/vanashree/internal/logger"
	"github.com/dtroode/vanashree/internal/model"
	"github.com/dtroode/vanashree/internal/password"
)

// dummyPassword is hashed once and compared against when a login names an
// unknown email, so both failure paths cost one bcrypt comparison.
const dummyPassword = "vanashree-unknown-account"

type Account struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	logger    *logger.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewAccount(userStore model.UserStore, hasher model.PasswordHasher, logger *logger.Logger) *Account {
	return &Account{
		userStore: userStore,
		hasher:    hasher,
		logger:    logger,
	}
}

// Register creates a new account. Username is checked before email.
func (a *Account) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	username := strings.TrimSpace(params.Username)
	email := strings.TrimSpace(params.Email)

	a.logger.Debug("Account service: registering user",
		"username", username,
		"email", email)

	if username == "" || email == "" || params.Password == "" {
		return model.User{}, model.NewValidationError("form", "Please fill in all fields")
	}
	if len(params.Password) > password.MaxLength {
		return model.User{}, model.NewValidationError("password", "Password is too long")
	}

	_, err := a.userStore.GetByUsername(ctx, username)
	switch {
	case err == nil:
		a.logger.Info("Account service: username already taken",
			"username", username)
		return model.User{}, model.ErrDuplicateUsername
	case !errors.Is(err, model.ErrNotFound):
		a.logger.Error("Account service: failed to get user by username",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("%w: failed to get user by username: %w", model.ErrPersistence, err)
	}

	_, err = a.userStore.GetByEmail(ctx, email)
	switch {
	case err == nil:
		a.logger.Info("Account service: email already registered",
			"email", email)
		return model.User{}, model.ErrDuplicateEmail
	case !errors.Is(err, model.ErrNotFound):
		a.logger.Error("Account service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("%w: failed to get user by email: %w", model.ErrPersistence, err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Account service: failed to hash password",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	})
	if errors.Is(err, model.ErrDuplicateAccount) {
		a.logger.Info("Account service: concurrent registration lost the race",
			"username", username,
			"email", email,
			"error", err.Error())
		return model.User{}, err
	}
	if err != nil {
		a.logger.Error("Account service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("%w: failed to create user: %w", model.ErrPersistence, err)
	}

	a.logger.Info("Account service: user registered",
		"user_id", user.ID,
		"username", user.Username)

	return user, nil
}

// FindByEmail returns model.ErrNotFound when no account uses the email.
func (a *Account) FindByEmail(ctx context.Context, email string) (model.User, error) {
	user, err := a.userStore.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

// VerifyPassword compares password against the stored hash.
func (a *Account) VerifyPassword(user model.User, password string) bool {
	return a.hasher.Compare(user.PasswordHash, password)
}

// Authenticate returns model.ErrInvalidCredentials for both an unknown email
// and a wrong password.
func (a *Account) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	user, err := a.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.hasher.Compare(a.dummy(), password)
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Account service: failed to load user for login",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("%w: %w", model.ErrPersistence, err)
	}

	if !a.VerifyPassword(user, password) {
		return model.User{}, model.ErrInvalidCredentials
	}

	return user, nil
}

func (a *Account) dummy() string {
	a.dummyOnce.Do(func() {
		hash, err := a.hasher.Hash(dummyPassword)
		if err != nil {
			a.logger.Warn("Account service: failed to prepare dummy hash",
				"error", err.Error())
			return
		}
		a.dummyHash = hash
	})
	return a.dummyHash
}
