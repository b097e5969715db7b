package exchange

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/locrec/internal/domain"
)

func sampleOrders() []domain.Order {
	return []domain.Order{{
		ID:          "ord-1",
		Created:     time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		Customer:    "Nguyễn Văn A",
		OrderDate:   domain.NewDate(2024, time.May, 2),
		Products:    []domain.Product{{Name: "Sản phẩm 1", Price: 100}, {Name: "Sản phẩm 3", Price: 300}},
		TotalAmount: 400,
		Status:      domain.StatusPending,
	}}
}

func TestExport_JSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Export(&buf, sampleOrders(), FormatJSON))

	var got []domain.Order
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sampleOrders(), got)
	assert.Contains(t, buf.String(), `"orderDate": "2024-05-02"`)
}

func TestExport_YAML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Export(&buf, sampleOrders(), FormatYAML))

	var got []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "ord-1", got[0]["id"])
	assert.Equal(t, "2024-05-02", got[0]["orderDate"])
	assert.Equal(t, 400, got[0]["totalAmount"])
	assert.Equal(t, "Chờ xác nhận", got[0]["status"])
}

func TestExport_Empty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Export[domain.Todo](&buf, nil, FormatJSON))

	assert.Equal(t, "[]\n", buf.String())
}

func TestExport_UnknownFormat(t *testing.T) {
	err := Export(&bytes.Buffer{}, sampleOrders(), Format("csv"))

	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatJSON, "JSON": FormatJSON, "yml": FormatYAML, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, domain.ErrUnknownFormat)
}
