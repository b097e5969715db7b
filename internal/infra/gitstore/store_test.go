package gitstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/locrec/internal/domain"
	"github.com/runoshun/locrec/internal/testutil"
)

func setupTestStore(t *testing.T) (*Store, *testutil.MockClock) {
	t.Helper()

	repo, err := git.Init(memory.NewStorage(), nil)
	require.NoError(t, err)

	clock := &testutil.MockClock{NowTime: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	return NewWithRepo(repo, clock), clock
}

func TestStore_GetItem_Missing(t *testing.T) {
	store, _ := setupTestStore(t)

	value, ok, err := store.GetItem(context.Background(), domain.TodoListKey)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestStore_SetAndGet(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetItem(ctx, domain.TodoListKey, `[{"id":"a"}]`))

	value, ok, err := store.GetItem(ctx, domain.TodoListKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"a"}]`, value)

	ref, err := store.repo.Reference(plumbing.ReferenceName("refs/locrec/kv/todolist"), true)
	require.NoError(t, err)
	commit, err := store.repo.CommitObject(ref.Hash())
	require.NoError(t, err)
	assert.Equal(t, "set todolist", commit.Message)
}

func TestStore_SetItem_EmptyValue(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetItem(ctx, "k", ""))

	value, ok, err := store.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, value)
}

func TestStore_History(t *testing.T) {
	store, clock := setupTestStore(t)
	ctx := context.Background()

	for _, v := range []string{"[]", `["one"]`, `["one","two"]`} {
		require.NoError(t, store.SetItem(ctx, domain.OrderListKey, v))
		clock.Advance(time.Minute)
	}

	revisions, err := store.History(ctx, domain.OrderListKey, 0)
	require.NoError(t, err)
	require.Len(t, revisions, 3)
	assert.Equal(t, len(`["one","two"]`), revisions[0].Size)
	assert.True(t, revisions[0].When.After(revisions[2].When))

	oldest, err := store.Revision(ctx, revisions[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "[]", oldest)

	limited, err := store.History(ctx, domain.OrderListKey, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	none, err := store.History(ctx, "absent", 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_RemoveItem(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.SetItem(ctx, "k", "v"))

	require.NoError(t, store.RemoveItem(ctx, "k"))
	require.NoError(t, store.RemoveItem(ctx, "k"))

	_, ok, err := store.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_InvalidKey(t *testing.T) {
	store, _ := setupTestStore(t)
	ctx := context.Background()

	assert.ErrorIs(t, store.SetItem(ctx, "", "v"), domain.ErrEmptyStorageKey)
	for _, key := range []string{"a/b", "a..b", ".hidden", "a b"} {
		assert.Error(t, store.SetItem(ctx, key, "v"), key)
	}
}

func TestOpen_CreatesBareRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.git")
	ctx := context.Background()

	store, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.SetItem(ctx, domain.TodoListKey, "[]"))

	reopened, err := Open(path, nil)
	require.NoError(t, err)
	value, ok, err := reopened.GetItem(ctx, domain.TodoListKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)
}
