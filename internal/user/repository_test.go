package user_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mailvalid/mailvalid/internal/user"
	"github.com/mailvalid/mailvalid/pkg/pg"
)

func testRepository(t *testing.T, repo user.Repository) {
	t.Helper()
	ctx := context.Background()

	u := user.User{
		ID:        uuid.New(),
		Email:     "repo-" + uuid.NewString() + "@example.com",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
	require.NoError(t, repo.Create(ctx, u))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)
	assert.True(t, u.CreatedAt.Equal(got.CreatedAt))

	got, err = repo.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	dup := u
	dup.ID = uuid.New()
	assert.ErrorIs(t, repo.Create(ctx, dup), user.ErrDuplicateEmail)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, user.ErrNotFound)
	_, err = repo.GetByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestMemoryRepository(t *testing.T) {
	t.Parallel()
	testRepository(t, user.NewMemoryRepository())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, user.NewMemoryRepository().Create(ctx, user.User{}), context.Canceled)
}

func TestPGRepository(t *testing.T) {
	url := os.Getenv("PG_CONN_URL")
	if url == "" {
		t.Skip("PG_CONN_URL is not set")
	}
	ctx := context.Background()

	cfg := pg.Config{ConnectionString: url, RetryAttempts: 1}
	pool, err := pg.Connect(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, pg.Migrate(ctx, pool, user.Migrations(), cfg, nil))
	testRepository(t, user.NewPGRepository(pool))
}

func TestMigrations(t *testing.T) {
	t.Parallel()
	data, err := fsReadFile("00001_create_users.sql")
	require.NoError(t, err)
	assert.Contains(t, string(data), "-- +goose Up")
	assert.Contains(t, string(data), "CREATE TABLE users")
}
