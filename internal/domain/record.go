// Package domain contains core entities and ports for locrec.
package domain

import "time"

// Storage keys, one per managed list.
const (
	TodoListKey  = "todolist"
	OrderListKey = "orderlist"
)

// Record is one entry of a managed list.
type Record interface {
	// RecordID returns the unique identifier.
	RecordID() string

	// CreatedAt returns the creation time, used for newest-first ordering.
	CreatedAt() time.Time
}
