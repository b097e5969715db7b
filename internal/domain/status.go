package domain

import (
	"fmt"
	"strings"
)

// OrderStatus represents the lifecycle state of an order.
// Values are persisted verbatim.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Chờ xác nhận" // Awaiting confirmation, the only cancellable state
	StatusShipping  OrderStatus = "Đang giao"    // Being delivered
	StatusCompleted OrderStatus = "Hoàn thành"   // Delivered
	StatusCancelled OrderStatus = "Hủy"          // Cancelled
)

// AllOrderStatuses returns all valid status values in display order.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		StatusPending,
		StatusShipping,
		StatusCompleted,
		StatusCancelled,
	}
}

// statusAliases maps ASCII spellings accepted on the command line.
var statusAliases = map[string]OrderStatus{
	"pending":   StatusPending,
	"shipping":  StatusShipping,
	"completed": StatusCompleted,
	"cancelled": StatusCancelled,
	"canceled":  StatusCancelled,
}

// ParseOrderStatus accepts a persisted status value or an ASCII alias.
func ParseOrderStatus(s string) (OrderStatus, error) {
	s = strings.TrimSpace(s)
	if st := OrderStatus(s); st.IsValid() {
		return st, nil
	}
	if st, ok := statusAliases[strings.ToLower(s)]; ok {
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

// IsValid returns true if the status is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusShipping, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanCancel returns true if an order in this status may be cancelled.
func (s OrderStatus) CanCancel() bool {
	return s == StatusPending
}

// Alias returns the ASCII alias of the status.
func (s OrderStatus) Alias() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusShipping:
		return "shipping"
	case StatusCompleted:
		return "completed"
	case StatusCancelled:
		return "cancelled"
	}
	return string(s)
}
