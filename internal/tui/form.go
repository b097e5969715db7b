package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/locrec/internal/form"
)

// Input placeholders.
const (
	placeholderDate     = "YYYY-MM-DD"
	placeholderCustomer = "Chọn hoặc nhập khách hàng"
	placeholderProducts = "Chọn sản phẩm"
)

// fieldState is the editable state of one form field.
// Fields are ordered to minimize memory padding.
type fieldState struct {
	chosen   map[string]bool // Multi-select choices
	selected string          // Select choice
	field    form.Field
	input    textinput.Model // Text, date and autocomplete fields
	cursor   int             // Option cursor of select fields
}

func (f *fieldState) hasOptions() bool {
	return f.field.Kind == form.KindSelect || f.field.Kind == form.KindMultiSelect
}

func (f *fieldState) focusable() bool {
	return f.field.Kind != form.KindReadOnly
}

// formModel is the create/edit modal.
// Fields are ordered to minimize memory padding.
type formModel struct {
	title       string
	submitLabel string
	err         string // Validation or save error shown under the fields
	fields      []fieldState
	focus       int
}

// newFormModel builds a modal for fields pre-filled from values.
func newFormModel(title, submitLabel string, fields []form.Field, values form.Values) *formModel {
	m := &formModel{
		title:       title,
		submitLabel: submitLabel,
		fields:      make([]fieldState, 0, len(fields)),
	}
	for _, f := range fields {
		fs := fieldState{field: f}
		switch f.Kind {
		case form.KindText, form.KindDate, form.KindAutocomplete:
			ti := textinput.New()
			ti.Prompt = ""
			ti.CharLimit = 200
			ti.SetValue(values.Get(f.Name))
			switch f.Kind {
			case form.KindDate:
				ti.Placeholder = placeholderDate
				ti.CharLimit = len(placeholderDate)
			case form.KindAutocomplete:
				ti.Placeholder = placeholderCustomer
				ti.ShowSuggestions = true
				ti.SetSuggestions(f.Options)
				// tab moves between fields
				ti.KeyMap.AcceptSuggestion = key.NewBinding(key.WithKeys("right"))
			default:
			}
			fs.input = ti
		case form.KindSelect:
			fs.selected = values.Get(f.Name)
			if i := slices.Index(f.Options, fs.selected); i >= 0 {
				fs.cursor = i
			}
		case form.KindMultiSelect:
			fs.chosen = make(map[string]bool, len(values[f.Name]))
			for _, v := range values[f.Name] {
				fs.chosen[v] = true
			}
		case form.KindReadOnly:
		}
		m.fields = append(m.fields, fs)
	}
	m.setFocus(0)
	return m
}

// Values returns the current input keyed by field name.
// Multi-select choices keep the option order.
func (m *formModel) Values() form.Values {
	values := form.Values{}
	for i := range m.fields {
		fs := &m.fields[i]
		switch fs.field.Kind {
		case form.KindText, form.KindDate, form.KindAutocomplete:
			values.Set(fs.field.Name, fs.input.Value())
		case form.KindSelect:
			values.Set(fs.field.Name, fs.selected)
		case form.KindMultiSelect:
			chosen := []string{}
			for _, opt := range fs.field.Options {
				if fs.chosen[opt] {
					chosen = append(chosen, opt)
				}
			}
			values[fs.field.Name] = chosen
		case form.KindReadOnly:
		}
	}
	return values
}

// focusField moves the focus to the named field.
func (m *formModel) focusField(name string) {
	for i := range m.fields {
		if m.fields[i].field.Name == name {
			m.setFocus(i)
			return
		}
	}
}

func (m *formModel) setFocus(i int) {
	if i < 0 || i >= len(m.fields) {
		return
	}
	m.focus = i
	for j := range m.fields {
		if m.fields[j].input.Focused() {
			m.fields[j].input.Blur()
		}
	}
	if fs := &m.fields[i]; fs.field.Kind == form.KindText || fs.field.Kind == form.KindDate || fs.field.Kind == form.KindAutocomplete {
		fs.input.Focus()
	}
}

// move shifts the focus by delta, skipping read-only fields.
func (m *formModel) move(delta int) {
	n := len(m.fields)
	if n == 0 {
		return
	}
	i := m.focus
	for k := 0; k < n; k++ {
		i = (i + delta + n) % n
		if m.fields[i].focusable() {
			m.setFocus(i)
			return
		}
	}
}

// Update handles a key press inside the modal. Submit and escape are
// handled by the caller.
func (m *formModel) Update(msg tea.KeyMsg, keys KeyMap) tea.Cmd {
	switch {
	case key.Matches(msg, keys.NextField):
		m.move(1)
		return nil
	case key.Matches(msg, keys.PrevField):
		m.move(-1)
		return nil
	}
	if len(m.fields) == 0 {
		return nil
	}

	fs := &m.fields[m.focus]
	if fs.hasOptions() {
		switch {
		case key.Matches(msg, keys.Up):
			if fs.cursor > 0 {
				fs.cursor--
			}
		case key.Matches(msg, keys.Down):
			if fs.cursor < len(fs.field.Options)-1 {
				fs.cursor++
			}
		case key.Matches(msg, keys.Toggle):
			if fs.cursor >= len(fs.field.Options) {
				return nil
			}
			opt := fs.field.Options[fs.cursor]
			if fs.field.Kind == form.KindMultiSelect {
				fs.chosen[opt] = !fs.chosen[opt]
			} else {
				fs.selected = opt
			}
			m.err = ""
		}
		return nil
	}
	if !fs.focusable() {
		return nil
	}

	before := fs.input.Value()
	var cmd tea.Cmd
	fs.input, cmd = fs.input.Update(msg)
	if fs.input.Value() != before {
		m.err = ""
	}
	return cmd
}

// View renders the modal.
func (m *formModel) View(styles Styles, keys KeyMap) string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render(m.title))
	b.WriteString("\n")

	for i := range m.fields {
		fs := &m.fields[i]
		focused := i == m.focus

		label := styles.FieldLabel
		if focused {
			label = styles.FieldLabelFocused
		}
		b.WriteString(label.Render(fs.field.Label))
		if fs.field.Required {
			b.WriteString(styles.Required.Render(" *"))
		}
		b.WriteString("\n")
		b.WriteString(m.fieldView(fs, focused, styles))
		b.WriteString("\n\n")
	}

	if m.err != "" {
		b.WriteString(styles.ErrorMsg.Render(m.err))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		styles.ButtonActive.Render(m.submitLabel+" ("+keys.Submit.Help().Key+")"),
		" ",
		styles.Button.Render(ButtonCancel+" ("+keys.Escape.Help().Key+")"),
	))
	return b.String()
}

func (m *formModel) fieldView(fs *fieldState, focused bool, styles Styles) string {
	switch fs.field.Kind {
	case form.KindReadOnly:
		return styles.ReadOnly.Render("  " + form.FormatAmount(form.LiveTotal(m.Values())))
	case form.KindSelect, form.KindMultiSelect:
		return optionsView(fs, focused, styles)
	case form.KindText, form.KindDate, form.KindAutocomplete:
	}
	return "  " + fs.input.View()
}

func optionsView(fs *fieldState, focused bool, styles Styles) string {
	lines := make([]string, 0, len(fs.field.Options)+1)
	if fs.field.Kind == form.KindMultiSelect && !focused && len(fs.chosen) == 0 {
		return styles.Option.Render("  " + placeholderProducts)
	}
	for i, opt := range fs.field.Options {
		var mark string
		var chosen bool
		if fs.field.Kind == form.KindMultiSelect {
			chosen = fs.chosen[opt]
			mark = "[ ] "
			if chosen {
				mark = "[x] "
			}
		} else {
			chosen = fs.selected == opt
			mark = "( ) "
			if chosen {
				mark = "(•) "
			}
		}
		if !focused && !chosen {
			continue
		}

		cursor := "  "
		style := styles.Option
		if chosen {
			style = styles.OptionChosen
		}
		if focused && i == fs.cursor {
			cursor = styles.OptionCursor.Render("> ")
		}
		lines = append(lines, cursor+style.Render(mark+opt))
	}
	return strings.Join(lines, "\n")
}
