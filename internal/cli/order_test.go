package cli

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/locrec/internal/app"
	"github.com/runoshun/locrec/internal/domain"
	"github.com/runoshun/locrec/internal/form"
	"github.com/runoshun/locrec/internal/tui"
)

func addTestOrder(t *testing.T, c *app.Container, customer, date, status string, products ...string) {
	t.Helper()
	args := []string{"order", "add", "--customer", customer, "--date", date, "--status", status}
	for _, p := range products {
		args = append(args, "--product", p)
	}
	_, _, err := runCLI(t, c, "", args...)
	require.NoError(t, err)
}

func TestOrderAdd(t *testing.T) {
	c, store := newTestContainer(t)

	out, _, err := runCLI(t, c, "", "order", "add",
		"--customer", "Nguyễn Văn A", "--date", "2024-05-02",
		"--product", "Sản phẩm 3", "--product", "Sản phẩm 1")

	require.NoError(t, err)
	assert.Equal(t, "Created order id-1 (total 400)\n", out)
	value := store.Value(domain.OrderListKey)
	assert.Contains(t, value, `"totalAmount":400`)
	assert.Contains(t, value, `"status":"Chờ xác nhận"`)
}

func TestOrderAdd_UnknownProduct(t *testing.T) {
	c, store := newTestContainer(t)

	_, _, err := runCLI(t, c, "", "order", "add",
		"--customer", "Nguyễn Văn A", "--date", "2024-05-02", "--product", "Sản phẩm 9")

	var selErr *domain.ProductSelectionError
	require.True(t, errors.As(err, &selErr))
	assert.Equal(t, []string{"Sản phẩm 9"}, selErr.Unknown)
	assert.Empty(t, store.Value(domain.OrderListKey))
}

func TestOrderAdd_NoProducts(t *testing.T) {
	c, _ := newTestContainer(t)

	_, _, err := runCLI(t, c, "", "order", "add", "--customer", "Nguyễn Văn A", "--date", "2024-05-02")

	var reqErr *form.RequiredError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, form.FieldProducts, reqErr.Field)
}

func TestOrderAdd_InvalidStatus(t *testing.T) {
	c, _ := newTestContainer(t)

	_, _, err := runCLI(t, c, "", "order", "add",
		"--customer", "Nguyễn Văn A", "--date", "2024-05-02", "--product", "Sản phẩm 1", "--status", "lost")

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestOrderList_FilterAndSort(t *testing.T) {
	c, _ := newTestContainer(t)
	addTestOrder(t, c, "Nguyễn Văn A", "2024-05-03", "pending", "Sản phẩm 1")
	addTestOrder(t, c, "Trần Thị B", "2024-05-01", "shipping", "Sản phẩm 2")
	addTestOrder(t, c, "Lê Văn C", "2024-05-02", "completed", "Sản phẩm 3")

	out, _, err := runCLI(t, c, "", "order", "list", "--status", "shipping")
	require.NoError(t, err)
	assert.Contains(t, out, "Trần Thị B")
	assert.NotContains(t, out, "Nguyễn Văn A")

	out, _, err = runCLI(t, c, "", "order", "list", "--search", "VĂN")
	require.NoError(t, err)
	assert.Contains(t, out, "Nguyễn Văn A")
	assert.Contains(t, out, "Lê Văn C")
	assert.NotContains(t, out, "Trần Thị B")

	out, _, err = runCLI(t, c, "", "order", "list", "--sort", "asc")
	require.NoError(t, err)
	first := strings.Index(out, "Trần Thị B")
	second := strings.Index(out, "Lê Văn C")
	third := strings.Index(out, "Nguyễn Văn A")
	assert.True(t, first < second && second < third, "ascending order date:\n%s", out)

	out, _, err = runCLI(t, c, "", "order", "list", "--status", "all")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "\n"), "header plus three orders")
}

func TestOrderList_InvalidFlags(t *testing.T) {
	c, _ := newTestContainer(t)

	_, _, err := runCLI(t, c, "", "order", "list", "--sort", "sideways")
	require.Error(t, err)

	_, _, err = runCLI(t, c, "", "order", "list", "--status", "lost")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestOrderEdit_RecomputesTotal(t *testing.T) {
	c, store := newTestContainer(t)
	addTestOrder(t, c, "Nguyễn Văn A", "2024-05-02", "pending", "Sản phẩm 1")

	out, _, err := runCLI(t, c, "", "order", "edit", "id-1", "--product", "Sản phẩm 2", "--product", "Sản phẩm 3", "--status", "Đang giao")

	require.NoError(t, err)
	assert.Equal(t, "Updated order id-1 (total 500)\n", out)
	value := store.Value(domain.OrderListKey)
	assert.Contains(t, value, `"totalAmount":500`)
	assert.Contains(t, value, `"status":"Đang giao"`)
	assert.Contains(t, value, "Nguyễn Văn A")
}

func TestOrderEdit_NoFlags(t *testing.T) {
	c, _ := newTestContainer(t)

	_, _, err := runCLI(t, c, "", "order", "edit", "id-1")

	assert.ErrorIs(t, err, errNoChanges)
}

func TestOrderCancel(t *testing.T) {
	tests := []struct {
		name       string
		status     string
		stdin      string
		args       []string
		wantErr    error
		wantOrders int
		wantOut    string
	}{
		{name: "yes flag", status: "pending", args: []string{"--yes"}, wantOrders: 0, wantOut: "Cancelled order id-1"},
		{name: "confirmed", status: "pending", stdin: "y\n", wantOrders: 0, wantOut: tui.CancelConfirmContent("id-1")},
		{name: "declined", status: "pending", stdin: "n\n", wantOrders: 1, wantOut: tui.CancelConfirmBack + "."},
		{name: "no answer", status: "pending", stdin: "", wantOrders: 1, wantOut: tui.CancelConfirmBack + "."},
		{name: "not pending", status: "shipping", args: []string{"--yes"}, wantErr: domain.ErrNotCancellable, wantOrders: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContainer(t)
			addTestOrder(t, c, "Nguyễn Văn A", "2024-05-02", tt.status, "Sản phẩm 1")

			args := append([]string{"order", "cancel", "id-1"}, tt.args...)
			out, errOut, err := runCLI(t, c, tt.stdin, args...)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, errOut, tui.CancelNoticeTitle)
			} else {
				require.NoError(t, err)
				assert.Contains(t, out, tt.wantOut)
			}

			orders, err := c.Orders(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantOrders, orders.Len())
		})
	}
}
