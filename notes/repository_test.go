package notes

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNote(id string) Note {
	now := time.Now().UTC()

	return Note{
		ID:        id,
		Title:     "title",
		Content:   "content",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, newTestNote("id-1"))
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)

	got, err := repo.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
}

func TestRepository_GetMissing(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestRepository_UpdateMissing(t *testing.T) {
	repo := NewRepository()

	_, err := repo.Update(context.Background(), "missing", newTestNote("missing"))

	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestRepository_Exists(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	assert.False(t, repo.Exists(ctx, "id-1"))

	_, err := repo.Create(ctx, newTestNote("id-1"))
	require.NoError(t, err)
	assert.True(t, repo.Exists(ctx, "id-1"))

	require.NoError(t, repo.Delete(ctx, "id-1"))
	assert.False(t, repo.Exists(ctx, "id-1"))
}

func TestRepository_ConcurrentAccess(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()

			id := "id-" + strconv.Itoa(n)
			_, err := repo.Create(ctx, newTestNote(id))
			assert.NoError(t, err)

			_, err = repo.Get(ctx, id)
			assert.NoError(t, err)

			_, err = repo.GetAll(ctx)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
