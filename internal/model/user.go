package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for registered users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	// Create inserts the user atomically. A uniqueness violation is reported
	// as ErrDuplicateUsername, ErrDuplicateEmail or ErrDuplicateAccount.
	Create(ctx context.Context, user User) (User, error)
}

// PasswordHasher produces and checks one-way salted password hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// User represents a registered account.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// RegisterParams contains the fields submitted on registration.
type RegisterParams struct {
	Username string
	Email    string
	Password string
}

// LoginParams contains the fields submitted on login.
type LoginParams struct {
	Email    string
	Password string
	Remember bool
}

// LoginResult is returned after a successful login.
type LoginResult struct {
	User    User
	Session Session
	Token   string
}
