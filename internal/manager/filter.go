package manager

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/runoshun/locrec/internal/domain"
)

// Filter narrows the visible orders.
// Fields are ordered to minimize memory padding.
type Filter struct {
	Status *domain.OrderStatus // nil matches every status
	Search string              // Matched against id (exact case) and customer (case-folded)
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.Status == nil && f.Search == ""
}

// Match reports whether o passes the filter.
func (f Filter) Match(o domain.Order) bool {
	if f.Status != nil && o.Status != *f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	if strings.Contains(o.ID, f.Search) {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(o.Customer), fold.String(f.Search))
}

// Apply returns the orders that pass the filter, in their original order.
func (f Filter) Apply(orders []domain.Order) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if f.Match(o) {
			out = append(out, o)
		}
	}
	return out
}

// SortDirection is the order-date column sort state.
type SortDirection int

// Sort directions, in the order the column header cycles through them.
const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

// Next returns the direction following d.
func (d SortDirection) Next() SortDirection {
	return (d + 1) % 3
}

// String returns a short label for the direction.
func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "asc"
	case SortDescending:
		return "desc"
	default:
		return "none"
	}
}

// ParseSortDirection parses "asc", "desc" or "none" (empty means none).
func ParseSortDirection(s string) (SortDirection, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return SortNone, true
	case "asc":
		return SortAscending, true
	case "desc":
		return SortDescending, true
	}
	return SortNone, false
}

// SortByOrderDate returns a copy of orders sorted by order date.
// Equal dates keep their relative order. SortNone returns the input order.
func SortByOrderDate(orders []domain.Order, dir SortDirection) []domain.Order {
	out := slices.Clone(orders)
	switch dir {
	case SortAscending:
		slices.SortStableFunc(out, func(a, b domain.Order) int {
			return a.OrderDate.Compare(b.OrderDate)
		})
	case SortDescending:
		slices.SortStableFunc(out, func(a, b domain.Order) int {
			return b.OrderDate.Compare(a.OrderDate)
		})
	}
	return out
}
