package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/locrec/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Background lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Order status colors
	Pending   lipgloss.Color
	Shipping  lipgloss.Color
	Completed lipgloss.Color
	Cancelled lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Warning:    lipgloss.Color("#FDCB6E"), // Yellow
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow

	Pending:   lipgloss.Color("#74B9FF"), // Light blue
	Shipping:  lipgloss.Color("#FDCB6E"), // Yellow
	Completed: lipgloss.Color("#00B894"), // Green
	Cancelled: lipgloss.Color("#636E72"), // Gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header    lipgloss.Style
	TabActive lipgloss.Style
	Tab       lipgloss.Style

	// Table
	Table table.Styles

	// Order view controls
	ViewBar   lipgloss.Style
	ViewLabel lipgloss.Style

	// Help
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style
	StatusMsg lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style
	Button       lipgloss.Style
	ButtonActive lipgloss.Style

	// Form
	FieldLabel        lipgloss.Style
	FieldLabelFocused lipgloss.Style
	Required          lipgloss.Style
	Option            lipgloss.Style
	OptionCursor      lipgloss.Style
	OptionChosen      lipgloss.Style
	ReadOnly          lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	tableStyles := table.DefaultStyles()
	tableStyles.Header = tableStyles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Colors.Muted).
		BorderBottom(true).
		Bold(true)
	tableStyles.Selected = tableStyles.Selected.
		Foreground(Colors.TitleSelected).
		Bold(true)

	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleSelected).
			Underline(true),

		Tab: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Table: tableStyles,

		ViewBar: lipgloss.NewStyle().
			MarginBottom(1),

		ViewLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		StatusMsg: lipgloss.NewStyle().
			Foreground(Colors.Success),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.TitleNormal).
			MarginBottom(1),

		DialogPrompt: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		Button: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(Colors.Muted),

		ButtonActive: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(Colors.TitleNormal).
			Background(Colors.Primary),

		FieldLabel: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		FieldLabelFocused: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		Required: lipgloss.NewStyle().
			Foreground(Colors.Error),

		Option: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		OptionCursor: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected),

		OptionChosen: lipgloss.NewStyle().
			Foreground(Colors.Success).
			Bold(true),

		ReadOnly: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// StatusStyle returns the badge style for an order status.
func (s Styles) StatusStyle(status domain.OrderStatus) lipgloss.Style {
	base := lipgloss.NewStyle()
	switch status {
	case domain.StatusPending:
		return base.Foreground(Colors.Pending)
	case domain.StatusShipping:
		return base.Foreground(Colors.Shipping)
	case domain.StatusCompleted:
		return base.Foreground(Colors.Completed)
	case domain.StatusCancelled:
		return base.Foreground(Colors.Cancelled)
	}
	return base
}
