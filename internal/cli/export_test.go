package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/locrec/internal/domain"
)

func TestExport_JSON(t *testing.T) {
	c, _ := newTestContainer(t)
	addTestOrder(t, c, "Nguyễn Văn A", "2024-05-02", "pending", "Sản phẩm 1", "Sản phẩm 2")

	out, _, err := runCLI(t, c, "", "export", "order")

	require.NoError(t, err)
	var orders []domain.Order
	require.NoError(t, json.Unmarshal([]byte(out), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, int64(300), orders[0].TotalAmount)
}

func TestExport_YAMLToFile(t *testing.T) {
	c, _ := newTestContainer(t)
	_, _, err := runCLI(t, c, "", "todo", "add", "--task", "Gọi khách hàng", "--description", "x", "--due", "2024-06-01")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "todos.yaml")

	out, errOut, err := runCLI(t, c, "", "export", "todo", "--format", "yaml", "-o", path)

	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Exported todolist to "+path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "task: Gọi khách hàng")
	assert.Contains(t, string(data), "2024-06-01")
}

func TestExport_EmptyList(t *testing.T) {
	c, _ := newTestContainer(t)

	out, _, err := runCLI(t, c, "", "export", "todo")

	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestExport_UnknownFormat(t *testing.T) {
	c, _ := newTestContainer(t)

	_, _, err := runCLI(t, c, "", "export", "todo", "--format", "csv")

	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}
