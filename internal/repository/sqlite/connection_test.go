package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/vanashree/internal/model"
)

func newFileRepo(t *testing.T) *UserRepository {
	t.Helper()

	conn, err := NewConnection(context.Background(), filepath.Join(t.TempDir(), "users.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewUserRepository(conn)
}

func TestUserRepository_File_UniqueConstraints(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepo(t)

	saved, err := repo.Create(ctx, model.User{Username: "asha", Email: "asha@example.com", PasswordHash: "h", CreatedAt: time.Now()})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)

	_, err = repo.Create(ctx, model.User{Username: "asha", Email: "other@example.com", PasswordHash: "h", CreatedAt: time.Now()})
	assert.ErrorIs(t, err, model.ErrDuplicateUsername)

	_, err = repo.Create(ctx, model.User{Username: "other", Email: "asha@example.com", PasswordHash: "h", CreatedAt: time.Now()})
	assert.ErrorIs(t, err, model.ErrDuplicateEmail)

	got, err := repo.GetByEmail(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)
}

func TestUserRepository_File_ConcurrentSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := newFileRepo(t)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		dupes     int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Create(ctx, model.User{
				Username:     fmt.Sprintf("racer-%d", i),
				Email:        "race@example.com",
				PasswordHash: "h",
				CreatedAt:    time.Now(),
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if assert.ErrorIs(t, err, model.ErrDuplicateEmail) {
				dupes++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, dupes)
}
