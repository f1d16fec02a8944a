package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dtroode/vanashree/internal/model"
)

const (
	uniqueViolationCode = "23505"

	usernameConstraint = "users_username_key"
	emailConstraint    = "users_email_key"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	query := `SELECT id, username, email, password_hash, created_at
			  FROM users WHERE email = $1`

	return r.getOne(ctx, "email", query, email)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	query := `SELECT id, username, email, password_hash, created_at
			  FROM users WHERE username = $1`

	return r.getOne(ctx, "username", query, username)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	query := `SELECT id, username, email, password_hash, created_at
			  FROM users WHERE id = $1`

	return r.getOne(ctx, "id", query, id)
}

func (r *UserRepository) getOne(ctx context.Context, by, query string, arg any) (model.User, error) {
	var user model.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by %s: %w", by, err)
	}

	return user, nil
}

// Create inserts the user in its own transaction. The unique constraints are
// the authority on duplicates; a violation rolls the transaction back.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (username, email, password_hash, created_at)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, username, email, password_hash, created_at`

	var savedUser model.User
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query,
			user.Username, user.Email, user.PasswordHash, user.CreatedAt,
		).Scan(
			&savedUser.ID, &savedUser.Username, &savedUser.Email, &savedUser.PasswordHash, &savedUser.CreatedAt,
		)
	})
	if err != nil {
		if dupErr := duplicateError(err); dupErr != nil {
			return model.User{}, dupErr
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}

func duplicateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}

	switch pgErr.ConstraintName {
	case usernameConstraint:
		return model.ErrDuplicateUsername
	case emailConstraint:
		return model.ErrDuplicateEmail
	default:
		return model.ErrDuplicateAccount
	}
}
