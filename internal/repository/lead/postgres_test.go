package lead

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexusai-site/internal/domain"
	"nexusai-site/internal/migrate"
)

func TestPostgres_CreateAndListRecent(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	require.NoError(t, migrate.Apply(ctx, pool))
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)
	older := domain.ContactSubmission{
		ID:         uuid.NewString(),
		Name:       "Ada",
		Email:      "ada@example.com",
		Subject:    "Hello",
		Message:    "First message",
		ReceivedAt: time.Now().Add(-time.Hour).UTC(),
	}
	newer := domain.ContactSubmission{
		ID:         uuid.NewString(),
		Name:       "Grace",
		Email:      "grace@example.com",
		Subject:    "Pricing",
		Message:    "Second message",
		Company:    "Navy",
		Service:    "automation",
		ReceivedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, "Navy", list[0].Company)
	assert.Equal(t, "", list[1].Phone)
}

func TestPostgres_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	require.NoError(t, migrate.Apply(ctx, pool))
	resetTables(ctx, t, pool)

	repo := NewPostgres(pool, nil)
	s := domain.ContactSubmission{ID: uuid.NewString(), Name: "A", Email: "a@b.c", Subject: "S", Message: "M", ReceivedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, s))
	assert.ErrorIs(t, repo.Create(ctx, s), ErrAlreadyExists)
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		t.Fatalf("ping db: %v", err)
	}
	return pool
}

func resetTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE contact_submissions`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
}
