package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const emptyListText = "Không có dữ liệu"

// View implements tea.Model.
func (m *Model) View() string {
	if m.mode == ModeHelp {
		return m.styles.App.Render(m.viewHelp())
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	switch m.mode {
	case ModeForm:
		if m.form != nil {
			b.WriteString(m.viewDialog(m.form.View(m.styles, m.keys)))
		}
	case ModeConfirm:
		b.WriteString(m.viewDialog(m.viewConfirm()))
	case ModeNotice:
		b.WriteString(m.viewDialog(m.viewNotice()))
	case ModeNormal, ModeSearch, ModeHelp:
		b.WriteString(m.viewList())
	}

	b.WriteString(m.viewFooter())
	return m.styles.App.Render(b.String())
}

// viewHeader renders the screen tabs.
func (m *Model) viewHeader() string {
	todo, order := m.styles.Tab, m.styles.Tab
	if m.screen == screenOrder {
		order = m.styles.TabActive
	} else {
		todo = m.styles.TabActive
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top,
		todo.Render(TitleTodos),
		"   ",
		order.Render(TitleOrders),
	)
	return m.styles.Header.Render("locrec") + "\n" + tabs
}

// viewList renders the view controls, the table and status lines.
func (m *Model) viewList() string {
	var b strings.Builder
	if m.screen == screenOrder {
		b.WriteString(m.viewOrderBar())
		b.WriteString("\n")
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")
	if len(m.rowIDs) == 0 {
		b.WriteString(m.styles.ViewLabel.Render(emptyListText))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.status != "" {
		b.WriteString(m.styles.StatusMsg.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}

// viewOrderBar renders the search box, status filter and sort state.
func (m *Model) viewOrderBar() string {
	search := m.search.View()
	if m.mode != ModeSearch && m.search.Value() == "" {
		search = m.styles.ViewLabel.Render("/ " + SearchPlaceholder)
	}

	filter := m.styles.ViewLabel.Render(AllOrdersLabel)
	if st := m.orders.Filter().Status; st != nil {
		filter = m.styles.StatusStyle(*st).Render(string(*st))
	}

	sort := m.styles.ViewLabel.Render("sort: " + m.orders.Sort().String())

	return m.styles.ViewBar.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		search, "   ", filter, "   ", sort,
	))
}

// viewDialog centers a dialog box in the list area.
func (m *Model) viewDialog(content string) string {
	box := m.styles.Dialog.Render(content)
	return lipgloss.Place(m.contentWidth(), max(m.height-6, lipgloss.Height(box)),
		lipgloss.Center, lipgloss.Center, box) + "\n"
}

func (m *Model) viewConfirm() string {
	return m.styles.DialogTitle.Render(CancelConfirmTitle) + "\n" +
		m.styles.DialogPrompt.Render(CancelConfirmContent(m.confirmID)) + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.styles.ButtonActive.Render(CancelConfirmOK+" (y)"),
			" ",
			m.styles.Button.Render(CancelConfirmBack+" (n)"),
		)
}

func (m *Model) viewNotice() string {
	return m.styles.DialogTitle.Render(CancelNoticeTitle) + "\n" +
		m.styles.DialogPrompt.Render(CancelNoticeContent) + "\n\n" +
		m.styles.ButtonActive.Render("OK (enter)")
}

// viewFooter renders the key hints for the current mode.
func (m *Model) viewFooter() string {
	var bindings []key.Binding
	switch m.mode {
	case ModeForm:
		bindings = []key.Binding{m.keys.Submit, m.keys.NextField, m.keys.PrevField, m.keys.Toggle, m.keys.Escape}
	case ModeSearch:
		bindings = []key.Binding{m.keys.Submit, m.keys.Escape}
	case ModeConfirm:
		bindings = []key.Binding{m.keys.Confirm, m.keys.Escape}
	case ModeNotice:
		bindings = []key.Binding{m.keys.Escape}
	case ModeNormal, ModeHelp:
		bindings = m.keys.ShortHelp(m.screen)
	}

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, m.styles.FooterKey.Render(h.Key)+" "+h.Desc)
	}
	return m.styles.Footer.Render(strings.Join(parts, "  "))
}

// viewHelp renders the help overlay in columns.
func (m *Model) viewHelp() string {
	cols := make([]string, 0, len(m.keys.FullHelp()))
	for _, group := range m.keys.FullHelp() {
		lines := make([]string, 0, len(group))
		for _, b := range group {
			h := b.Help()
			lines = append(lines, m.styles.HelpKey.Width(8).Render(h.Key)+m.styles.HelpDesc.Render(h.Desc))
		}
		cols = append(cols, lipgloss.NewStyle().MarginRight(4).Render(strings.Join(lines, "\n")))
	}

	content := m.styles.DialogTitle.Render("Keybindings") + "\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, cols...) + "\n\n" +
		m.styles.HelpDesc.Render("Press ? or esc to close")
	return m.styles.Help.Render(content)
}

// oneLine collapses line breaks so a value fits one table row.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
