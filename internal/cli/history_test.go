package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/locrec/internal/app"
	"github.com/runoshun/locrec/internal/domain"
	"github.com/runoshun/locrec/internal/testutil"
)

func TestHistory_ListsRevisions(t *testing.T) {
	store := testutil.NewMockHistoryStore()
	when := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	store.Revisions[domain.OrderListKey] = []domain.Revision{
		{ID: "a1b2c3d4e5f60718293a", When: when.Add(time.Hour), Size: 120},
		{ID: "ffeeddccbbaa99887766", When: when, Size: 2},
	}
	store.Values["a1b2c3d4e5f60718293a"] = `[{"id":"x"},{"id":"y"}]`
	store.Values["ffeeddccbbaa99887766"] = `not json`
	c := app.NewWithDeps(app.Config{}, store, &testutil.MockClock{NowTime: when}, &testutil.SequentialIDs{}, nil)

	out, _, err := runCLI(t, c, "", "history", "order")

	require.NoError(t, err)
	assert.Contains(t, out, "REVISION")
	assert.Contains(t, out, "a1b2c3d4e5f6 ")
	assert.NotContains(t, out, "a1b2c3d4e5f60718293a")
	assert.Contains(t, out, "2024-05-01 10:30:00")
	assert.Contains(t, out, "?")
}

func TestHistory_Limit(t *testing.T) {
	store := testutil.NewMockHistoryStore()
	store.Revisions[domain.TodoListKey] = []domain.Revision{{ID: "rev1"}, {ID: "rev2"}}
	store.Values["rev1"] = "[]"
	store.Values["rev2"] = "[]"
	c := app.NewWithDeps(app.Config{}, store, &testutil.MockClock{}, &testutil.SequentialIDs{}, nil)

	out, _, err := runCLI(t, c, "", "history", "todo", "-n", "1")

	require.NoError(t, err)
	assert.Contains(t, out, "rev1")
	assert.NotContains(t, out, "rev2")
}

func TestHistory_BackendWithoutHistory(t *testing.T) {
	c, _ := newTestContainer(t)

	_, _, err := runCLI(t, c, "", "history", "todo")

	assert.ErrorIs(t, err, domain.ErrNoHistory)
}
