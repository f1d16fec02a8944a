package model

import (
	"context"
	"io"
)

// ObjectSource reads and seeds objects in external storage.
type ObjectSource interface {
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Upload(ctx context.Context, key string, reader io.Reader, size int64) error
	Exists(ctx context.Context, key string) (bool, error)
}
