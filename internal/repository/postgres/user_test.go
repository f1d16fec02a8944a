package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/dtroode/vanashree/internal/model"
)

func TestNewUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

func TestDuplicateError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "username constraint",
			err:  &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: usernameConstraint},
			want: model.ErrDuplicateUsername,
		},
		{
			name: "email constraint",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: emailConstraint}),
			want: model.ErrDuplicateEmail,
		},
		{
			name: "unknown unique constraint",
			err:  &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_pkey"},
			want: model.ErrDuplicateAccount,
		},
		{
			name: "other postgres error",
			err:  &pgconn.PgError{Code: "23502"},
			want: nil,
		},
		{
			name: "non postgres error",
			err:  errors.New("connection reset"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := duplicateError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, model.ErrDuplicateAccount)
		})
	}
}

func TestConnection_PingWithoutPool(t *testing.T) {
	c := &Connection{}
	assert.Error(t, c.Ping(t.Context()))
	assert.NoError(t, c.Close())
}
