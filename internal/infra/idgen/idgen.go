// Package idgen provides record identifier generation.
package idgen

import (
	"github.com/google/uuid"

	"github.com/runoshun/locrec/internal/domain"
)

// UUID generates random version 4 UUIDs.
type UUID struct{}

// Ensure UUID implements domain.IDGenerator.
var _ domain.IDGenerator = UUID{}

// NewID returns a new UUIDv4 string.
func (UUID) NewID() string {
	return uuid.NewString()
}
