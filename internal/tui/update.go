package tui

import (
	"errors"
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/locrec/internal/domain"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case MsgLoaded:
		m.refreshTable()
		return m, nil

	case MsgSaved:
		m.form = nil
		m.saving = false
		m.mode = ModeNormal
		m.status = msg.Status
		m.err = nil
		m.refreshTable()
		return m, nil

	case MsgRemoved:
		m.status = msg.Status
		m.err = nil
		m.refreshTable()
		return m, nil

	case MsgFormError:
		m.saving = false
		m.showFormError(msg.Err)
		return m, nil

	case MsgError:
		m.err = msg.Err
		return m, nil
	}

	// Forward other messages (cursor blink) to the focused input
	switch m.mode {
	case ModeSearch:
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	case ModeForm:
		if m.form != nil && m.form.focus < len(m.form.fields) {
			fs := &m.form.fields[m.form.focus]
			if fs.input.Focused() {
				var cmd tea.Cmd
				fs.input, cmd = fs.input.Update(msg)
				return m, cmd
			}
		}
	case ModeNormal, ModeConfirm, ModeNotice, ModeHelp:
	}
	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even while typing
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeForm:
		return m.handleFormMode(msg)
	case ModeSearch:
		return m.handleSearchMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeNotice:
		return m.handleNoticeMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeNormal:
	}
	return m.handleNormalMode(msg)
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
		return m, nil

	case key.Matches(msg, m.keys.Switch):
		if m.screen == screenOrder {
			m.screen = screenTodo
		} else {
			m.screen = screenOrder
		}
		m.status = ""
		m.err = nil
		m.table.SetCursor(0)
		m.refreshTable()
		return m, nil

	case key.Matches(msg, m.keys.New):
		m.status = ""
		if err := m.openForm(""); err != nil {
			m.err = err
		}
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		id := m.selectedID()
		if id == "" {
			return m, nil
		}
		m.status = ""
		if err := m.openForm(id); err != nil {
			m.err = err
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		return m.handleDelete()

	case key.Matches(msg, m.keys.Escape):
		m.status = ""
		m.err = nil
		return m, nil
	}

	if m.screen != screenOrder {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Filter):
		f := m.orders.Filter()
		f.Status = nextStatusFilter(f.Status)
		m.orders.SetFilter(f)
		m.table.SetCursor(0)
		m.refreshTable()
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.orders.SetSort(m.orders.Sort().Next())
		m.refreshTable()
		return m, nil
	}

	return m, nil
}

// handleDelete deletes the selected to-do, or asks before cancelling the selected order.
func (m *Model) handleDelete() (tea.Model, tea.Cmd) {
	id := m.selectedID()
	if id == "" {
		return m, nil
	}
	m.status = ""

	if m.screen != screenOrder {
		return m, m.deleteTodoCmd(id)
	}

	if err := m.orders.CheckCancel(id); err != nil {
		if errors.Is(err, domain.ErrNotCancellable) {
			m.mode = ModeNotice
			return m, nil
		}
		m.err = err
		return m, nil
	}
	m.confirmID = id
	m.mode = ModeConfirm
	return m, nil
}

// handleFormMode handles keys while the create/edit modal is open.
func (m *Model) handleFormMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = ModeNormal
		return m, nil
	}
	if m.saving {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeForm()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		return m, m.submitForm()
	}
	return m, m.form.Update(msg, m.keys)
}

// handleSearchMode handles keys while typing the order search.
func (m *Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.search.SetValue("")
		m.search.Blur()
		m.applySearch()
		m.mode = ModeNormal
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		m.search.Blur()
		m.mode = ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applySearch()
	return m, cmd
}

func (m *Model) applySearch() {
	f := m.orders.Filter()
	if f.Search == m.search.Value() {
		return
	}
	f.Search = m.search.Value()
	m.orders.SetFilter(f)
	m.table.SetCursor(0)
	m.refreshTable()
}

// handleConfirmMode handles keys in the cancel-order confirmation dialog.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		id := m.confirmID
		m.confirmID = ""
		m.mode = ModeNormal
		return m, m.cancelOrderCmd(id)
	case key.Matches(msg, m.keys.Escape), msg.String() == "n":
		m.confirmID = ""
		m.mode = ModeNormal
	}
	return m, nil
}

// handleNoticeMode closes the notice on escape or enter.
func (m *Model) handleNoticeMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) || msg.Type == tea.KeyEnter {
		m.mode = ModeNormal
	}
	return m, nil
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Quit) {
		m.mode = ModeNormal
	}
	return m, nil
}

// nextStatusFilter cycles nil, each status in display order, then nil again.
func nextStatusFilter(cur *domain.OrderStatus) *domain.OrderStatus {
	statuses := domain.AllOrderStatuses()
	if cur == nil {
		return &statuses[0]
	}
	i := slices.Index(statuses, *cur)
	if i < 0 || i == len(statuses)-1 {
		return nil
	}
	return &statuses[i+1]
}
