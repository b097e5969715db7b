package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runoshun/locrec/internal/domain"
)

func TestSortByOrderDate_Stable(t *testing.T) {
	d1 := domain.NewDate(2024, 1, 1)
	d2 := domain.NewDate(2024, 1, 2)
	in := []domain.Order{
		{ID: "x", OrderDate: d2},
		{ID: "y", OrderDate: d1},
		{ID: "z", OrderDate: d2},
	}

	asc := SortByOrderDate(in, SortAscending)

	assert.Equal(t, []string{"y", "x", "z"}, ids(asc))
	assert.Equal(t, []string{"x", "y", "z"}, ids(in), "input is not modified")
	assert.Equal(t, []string{"x", "z", "y"}, ids(SortByOrderDate(in, SortDescending)))
}

func TestSortDirection_Next(t *testing.T) {
	assert.Equal(t, SortAscending, SortNone.Next())
	assert.Equal(t, SortDescending, SortAscending.Next())
	assert.Equal(t, SortNone, SortDescending.Next())
}

func TestParseSortDirection(t *testing.T) {
	tests := []struct {
		in   string
		want SortDirection
		ok   bool
	}{
		{"", SortNone, true},
		{"asc", SortAscending, true},
		{"DESC", SortDescending, true},
		{"none", SortNone, true},
		{"up", SortNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseSortDirection(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}

func TestFilter_IsZero(t *testing.T) {
	st := domain.StatusCompleted
	assert.True(t, Filter{}.IsZero())
	assert.False(t, Filter{Search: "a"}.IsZero())
	assert.False(t, Filter{Status: &st}.IsZero())
}

func ids(orders []domain.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}
