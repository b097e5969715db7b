package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors.
var (
	ErrRecordNotFound  = errors.New("record not found")
	ErrAmbiguousID     = errors.New("ambiguous record id prefix")
	ErrNotCancellable  = errors.New(`only orders in status "Chờ xác nhận" can be cancelled`)
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidDate     = errors.New("invalid date (expected YYYY-MM-DD)")
	ErrUnknownBackend  = errors.New("unknown storage backend")
	ErrUnknownScreen   = errors.New("unknown screen")
	ErrConfigExists    = errors.New("config file already exists")
	ErrUnknownFormat   = errors.New("unknown export format")
	ErrEmptyStorageKey = errors.New("storage key cannot be empty")
	ErrConfigNil       = errors.New("config is nil")
	ErrNoHistory       = errors.New("storage backend does not keep history")
)

// ProductSelectionError reports a product selection that cannot be resolved
// against the catalog. It is shown to the user instead of silently aborting
// the submission.
type ProductSelectionError struct {
	Unknown []string // Names not present in the catalog
	Empty   bool     // No product was selected at all
}

func (e *ProductSelectionError) Error() string {
	if e.Empty {
		return "product selection is empty"
	}
	return fmt.Sprintf("unknown product(s): %s", strings.Join(e.Unknown, ", "))
}
