package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"local.dev/lyntr-backend/internal/models"
)

func TestMemoryStoreCreateAndFetch(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	s.PutUser(models.User{ID: "u1", Username: "Ann", Handle: "ann"})

	l, err := models.NewLynt("1", "u1", "hello there")
	require.NoError(t, err)
	_, err = s.Create(ctx, l)
	require.NoError(t, err)

	v, err := s.FetchForRead(ctx, "1", "u2")
	require.NoError(t, err)
	assert.Equal(t, "hello there", v.Content)
	assert.Equal(t, "ann", v.Author.Handle)
	assert.Zero(t, v.LikeCount)
	assert.False(t, v.LikedByMe)
}

func TestMemoryStoreFetchUnknownAuthor(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	l, err := models.NewLynt("1", "ghost", "orphaned")
	require.NoError(t, err)
	_, err = s.Create(ctx, l)
	require.NoError(t, err)

	v, err := s.FetchForRead(ctx, "1", "u2")
	require.NoError(t, err)
	assert.Equal(t, "ghost", v.Author.ID)
	assert.Empty(t, v.Author.Handle)
}

func TestMemoryStoreNotFound(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.FetchForRead(ctx, "missing", "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ResolveRepostTarget(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.IncrementViews(ctx, "missing"), ErrNotFound)
}

func TestMemoryStoreResolveRepostTarget(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	l, err := models.NewLynt("42", "u1", "original")
	require.NoError(t, err)
	_, err = s.Create(ctx, l)
	require.NoError(t, err)

	id, err := s.ResolveRepostTarget(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "42", id)
}

func TestMemoryStoreLikes(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	l, err := models.NewLynt("1", "u1", "likeable")
	require.NoError(t, err)
	_, err = s.Create(ctx, l)
	require.NoError(t, err)

	s.AddLike("1", "u2")
	s.AddLike("1", "u3")

	v, err := s.FetchForRead(ctx, "1", "u2")
	require.NoError(t, err)
	assert.EqualValues(t, 2, v.LikeCount)
	assert.True(t, v.LikedByMe)

	v, err = s.FetchForRead(ctx, "1", "u4")
	require.NoError(t, err)
	assert.False(t, v.LikedByMe)
}

func TestMemoryStoreConcurrentViews(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	l, err := models.NewLynt("1", "u1", "busy")
	require.NoError(t, err)
	_, err = s.Create(ctx, l)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.IncrementViews(ctx, "1")
		}()
	}
	wg.Wait()

	v, err := s.FetchForRead(ctx, "1", "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 100, v.Views)
}
