// Package repository selects the user store implementation from a database URL.
package repository

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dtroode/vanashree/internal/model"
	"github.com/dtroode/vanashree/internal/repository/postgres"
	"github.com/dtroode/vanashree/internal/repository/sqlite"
)

// Open connects to the database named by url and returns its user store.
// Supported schemes are sqlite:// and postgres:// (or postgresql://).
func Open(ctx context.Context, url string) (model.UserStore, io.Closer, error) {
	switch {
	case strings.HasPrefix(url, "sqlite://"):
		conn, err := sqlite.NewConnection(ctx, sqlitePath(url))
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewUserRepository(conn), conn, nil
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		conn, err := postgres.NewConection(ctx, url)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewUserRepository(conn), conn, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database url scheme: %q", scheme(url))
	}
}

// sqlitePath follows the SQLAlchemy convention: sqlite:///name.db is relative,
// sqlite:////abs/name.db is absolute.
func sqlitePath(url string) string {
	path := strings.TrimPrefix(url, "sqlite://")
	return strings.TrimPrefix(path, "/")
}

func scheme(url string) string {
	if i := strings.Index(url, "://"); i >= 0 {
		return url[:i]
	}
	return url
}
