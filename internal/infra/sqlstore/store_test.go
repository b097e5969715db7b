package sqlstore

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/runoshun/locrec/internal/domain"
	"github.com/runoshun/locrec/internal/testutil"
)

func newTestStore(t *testing.T, clock domain.Clock) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:kv_%s?mode=memory&cache=shared", uuid.NewString())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	store, err := NewWithDB(db, clock)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_GetItem_Missing(t *testing.T) {
	store := newTestStore(t, nil)

	value, ok, err := store.GetItem(context.Background(), domain.TodoListKey)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestStore_SetItem_Upserts(t *testing.T) {
	clock := &testutil.MockClock{NowTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := newTestStore(t, clock)
	ctx := context.Background()

	require.NoError(t, store.SetItem(ctx, domain.OrderListKey, "[]"))
	clock.Advance(time.Hour)
	require.NoError(t, store.SetItem(ctx, domain.OrderListKey, `[{"id":"x"}]`))

	value, ok, err := store.GetItem(ctx, domain.OrderListKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"x"}]`, value)

	var count int64
	require.NoError(t, store.db.Model(&entry{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var e entry
	require.NoError(t, store.db.Where(map[string]any{"key": domain.OrderListKey}).First(&e).Error)
	assert.True(t, e.UpdatedAt.Equal(clock.NowTime), "updated_at = %v", e.UpdatedAt)
}

func TestStore_RemoveItem(t *testing.T) {
	store := newTestStore(t, nil)
	ctx := context.Background()
	require.NoError(t, store.SetItem(ctx, "k", "v"))

	require.NoError(t, store.RemoveItem(ctx, "k"))
	require.NoError(t, store.RemoveItem(ctx, "k"))

	_, ok, err := store.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_EmptyKey(t *testing.T) {
	store := newTestStore(t, nil)
	ctx := context.Background()

	_, _, err := store.GetItem(ctx, "")
	assert.ErrorIs(t, err, domain.ErrEmptyStorageKey)
	assert.ErrorIs(t, store.SetItem(ctx, "", "v"), domain.ErrEmptyStorageKey)
	assert.ErrorIs(t, store.RemoveItem(ctx, ""), domain.ErrEmptyStorageKey)
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "storage.db")
	ctx := context.Background()

	store, err := Open(path, nil)
	require.NoError(t, err)
	require.NoError(t, store.SetItem(ctx, domain.TodoListKey, "[]"))
	require.NoError(t, store.Close())

	reopened, err := Open(path, nil)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	value, ok, err := reopened.GetItem(ctx, domain.TodoListKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", value)
}
