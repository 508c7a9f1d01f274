package store

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"local.dev/lyntr-backend/internal/models"
)

// Integration test. Runs only when DB_HOST points at a reachable Postgres.
func openTestStore(t *testing.T) *PostgresStore {
	t.Helper()
	host := os.Getenv("DB_HOST")
	if host == "" {
		t.Skip("DB_HOST not set, skipping postgres integration test")
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), os.Getenv("DB_PORT"))
	db, err := OpenPostgres(dsn)
	require.NoError(t, err)
	ps, err := NewPostgresStore(db)
	require.NoError(t, err)
	return ps
}

func TestPostgresStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	l, err := models.NewLynt("it-1", "it-user", "integration hello")
	require.NoError(t, err)
	_, err = s.Create(ctx, l)
	require.NoError(t, err)

	v, err := s.FetchForRead(ctx, "it-1", "someone-else")
	require.NoError(t, err)
	assert.Equal(t, "integration hello", v.Content)
	assert.Equal(t, "it-user", v.Author.ID)

	require.NoError(t, s.IncrementViews(ctx, "it-1"))
	v, err = s.FetchForRead(ctx, "it-1", "someone-else")
	require.NoError(t, err)
	assert.EqualValues(t, 1, v.Views)
}

func TestPostgresStoreNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.FetchForRead(ctx, "does-not-exist", "u")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ResolveRepostTarget(ctx, "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.IncrementViews(ctx, "does-not-exist"), ErrNotFound)
}
