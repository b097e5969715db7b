package domain

import "time"

// Todo is one entry of the to-do list.
// Fields are ordered to minimize memory padding.
type Todo struct {
	Created     time.Time `json:"createdAt" yaml:"createdAt"`     // Creation time (ordering key)
	DueDate     Date      `json:"dueDate" yaml:"dueDate"`         // Due date
	ID          string    `json:"id" yaml:"id"`                   // Unique identifier
	Task        string    `json:"task" yaml:"task"`               // Task name
	Description string    `json:"description" yaml:"description"` // Description
}

// RecordID returns the todo's identifier.
func (t Todo) RecordID() string { return t.ID }

// CreatedAt returns the todo's creation time.
func (t Todo) CreatedAt() time.Time { return t.Created }
