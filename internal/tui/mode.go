// Package tui provides the terminal user interface for locrec.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal  Mode = iota // Table navigation
	ModeForm                // Create/edit modal
	ModeSearch              // Order search input
	ModeConfirm             // Cancel-order confirmation dialog
	ModeNotice              // Informational dialog
	ModeHelp                // Help overlay
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeForm:
		return "form"
	case ModeSearch:
		return "search"
	case ModeConfirm:
		return "confirm"
	case ModeNotice:
		return "notice"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeForm, ModeSearch:
		return true
	case ModeNormal, ModeConfirm, ModeNotice, ModeHelp:
		return false
	}
	return false
}
