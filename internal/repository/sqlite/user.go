package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/dtroode/vanashree/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	const query = `SELECT id, username, email, password_hash, created_at FROM users WHERE email = ?`
	return r.getOne(ctx, "email", query, email)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	const query = `SELECT id, username, email, password_hash, created_at FROM users WHERE username = ?`
	return r.getOne(ctx, "username", query, username)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	const query = `SELECT id, username, email, password_hash, created_at FROM users WHERE id = ?`
	return r.getOne(ctx, "id", query, id)
}

func (r *UserRepository) getOne(ctx context.Context, by, query string, arg any) (model.User, error) {
	var user model.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by %s: %w", by, err)
	}

	return user, nil
}

// Create inserts the user inside a transaction; any failure rolls it back.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	const query = `INSERT INTO users (username, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)
		RETURNING id, username, email, password_hash, created_at`

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var saved model.User
	err = tx.QueryRowContext(ctx, query,
		user.Username, user.Email, user.PasswordHash, user.CreatedAt,
	).Scan(&saved.ID, &saved.Username, &saved.Email, &saved.PasswordHash, &saved.CreatedAt)
	if err != nil {
		if dupErr := duplicateError(err); dupErr != nil {
			return model.User{}, dupErr
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.User{}, fmt.Errorf("failed to commit user: %w", err)
	}

	return saved, nil
}

func duplicateError(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) || sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return nil
	}

	// SQLite reports the violated column as "UNIQUE constraint failed: users.email".
	msg := sqliteErr.Error()
	switch {
	case strings.Contains(msg, "users.username"):
		return model.ErrDuplicateUsername
	case strings.Contains(msg, "users.email"):
		return model.ErrDuplicateEmail
	default:
		return model.ErrDuplicateAccount
	}
}
