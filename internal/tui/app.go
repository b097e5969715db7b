package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/locrec/internal/app"
	"github.com/runoshun/locrec/internal/domain"
	"github.com/runoshun/locrec/internal/form"
	"github.com/runoshun/locrec/internal/manager"
)

// Screens.
const (
	screenTodo  = domain.ScreenTodo
	screenOrder = domain.ScreenOrder
)

// Default dimensions used before the first WindowSizeMsg.
const (
	defaultWidth  = 100
	defaultHeight = 24
)

// Model is the main bubbletea model for the TUI.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	container *app.Container
	todos     *manager.Todos
	orders    *manager.Orders

	// Pointers
	form *formModel // Open create/edit modal

	// Interfaces
	err error

	// Structs
	keys   KeyMap
	styles Styles
	table  table.Model
	search textinput.Model

	// Strings
	screen    string
	status    string // Result of the last save
	confirmID string // Order awaiting cancel confirmation

	// Slices
	rowIDs []string // Record id of each table row

	// Ints
	mode   Mode
	width  int
	height int

	// Bools
	saving bool
}

// New creates a new TUI model showing the given screen.
func New(c *app.Container, screen string) *Model {
	if screen != screenOrder {
		screen = screenTodo
	}

	styles := DefaultStyles()

	t := table.New(
		table.WithFocused(true),
		table.WithHeight(defaultHeight-10),
		table.WithWidth(defaultWidth),
	)
	t.SetStyles(styles.Table)

	search := textinput.New()
	search.Placeholder = SearchPlaceholder
	search.Prompt = "/ "
	search.CharLimit = 100

	m := &Model{
		container: c,
		todos:     c.TodosManager(),
		orders:    c.OrdersManager(),
		keys:      DefaultKeyMap(),
		styles:    styles,
		table:     t,
		search:    search,
		screen:    screen,
		mode:      ModeNormal,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.refreshTable()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(screenTodo), m.loadCmd(screenOrder))
}

// Screen returns the screen being shown.
func (m *Model) Screen() string {
	return m.screen
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Commands

func (m *Model) loadCmd(screen string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if screen == screenOrder {
			err = m.orders.Load(ctx)
		} else {
			err = m.todos.Load(ctx)
		}
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgLoaded{Screen: screen}
	}
}

func (m *Model) submitTodoCmd(in manager.TodoInput) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.todos.Submit(context.Background(), in); err != nil {
			return MsgFormError{Err: err}
		}
		return MsgSaved{Screen: screenTodo, Status: StatusTodoSaved}
	}
}

func (m *Model) submitOrderCmd(in manager.OrderInput) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.orders.Submit(context.Background(), in); err != nil {
			return MsgFormError{Err: err}
		}
		return MsgSaved{Screen: screenOrder, Status: StatusOrderSaved}
	}
}

func (m *Model) deleteTodoCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.todos.Delete(context.Background(), id); err != nil {
			return MsgError{Err: err}
		}
		return MsgRemoved{Screen: screenTodo, Status: StatusTodoDeleted}
	}
}

func (m *Model) cancelOrderCmd(id string) tea.Cmd {
	return func() tea.Msg {
		if err := m.orders.Cancel(context.Background(), id); err != nil {
			return MsgError{Err: err}
		}
		return MsgRemoved{Screen: screenOrder, Status: StatusOrderCancelled}
	}
}

// Form helpers

// openForm opens the create modal, or the edit modal when id is set.
func (m *Model) openForm(id string) error {
	var (
		title, submit string
		fields        []form.Field
		values        = form.Values{}
	)

	if m.screen == screenOrder {
		title, submit, fields = TitleNewOrder, ButtonAdd, form.OrderFields()
		if id == "" {
			m.orders.OpenCreate()
		} else {
			if err := m.orders.OpenEdit(id); err != nil {
				return err
			}
			target := m.orders.State().Target
			if target == nil {
				return domain.ErrRecordNotFound
			}
			title, submit, values = TitleEditOrder, ButtonEdit, form.OrderValues(*target)
		}
	} else {
		title, submit, fields = TitleNewTodo, ButtonAdd, form.TodoFields()
		if id == "" {
			m.todos.OpenCreate()
		} else {
			if err := m.todos.OpenEdit(id); err != nil {
				return err
			}
			target := m.todos.State().Target
			if target == nil {
				return domain.ErrRecordNotFound
			}
			title, submit, values = TitleEditTodo, ButtonEdit, form.TodoValues(*target)
		}
	}

	m.form = newFormModel(title, submit, fields, values)
	m.mode = ModeForm
	return nil
}

// closeForm hides the modal and resets the manager's edit target.
func (m *Model) closeForm() {
	if m.screen == screenOrder {
		m.orders.Close()
	} else {
		m.todos.Close()
	}
	m.form = nil
	m.saving = false
	m.mode = ModeNormal
}

// submitForm validates the modal and starts the save.
// A missing required value keeps the modal open and focuses the field.
func (m *Model) submitForm() tea.Cmd {
	if m.form == nil || m.saving {
		return nil
	}
	values := m.form.Values()
	validator := m.container.Validator

	var cmd tea.Cmd
	var err error
	if m.screen == screenOrder {
		var in manager.OrderInput
		if in, err = validator.OrderInput(values); err == nil {
			cmd = m.submitOrderCmd(in)
		}
	} else {
		var in manager.TodoInput
		if in, err = validator.TodoInput(values); err == nil {
			cmd = m.submitTodoCmd(in)
		}
	}
	if err != nil {
		m.showFormError(err)
		return nil
	}
	m.saving = true
	return cmd
}

func (m *Model) showFormError(err error) {
	if m.form == nil {
		m.err = err
		return
	}
	m.form.err = err.Error()
	var reqErr *form.RequiredError
	if errors.As(err, &reqErr) {
		m.form.focusField(reqErr.Field)
		return
	}
	var selErr *domain.ProductSelectionError
	if errors.As(err, &selErr) {
		m.form.focusField(form.FieldProducts)
	}
}

// Table helpers

// selectedID returns the record id of the highlighted row, or "".
func (m *Model) selectedID() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rowIDs) {
		return ""
	}
	return m.rowIDs[i]
}

// refreshTable rebuilds columns and rows for the current screen.
func (m *Model) refreshTable() {
	var cols []table.Column
	var rows []table.Row
	ids := []string{}

	if m.screen == screenOrder {
		cols = m.orderColumns()
		for _, o := range m.orders.Visible() {
			rows = append(rows, table.Row{
				o.ID,
				o.Customer,
				o.OrderDate.String(),
				form.FormatAmount(o.TotalAmount),
				string(o.Status),
			})
			ids = append(ids, o.ID)
		}
	} else {
		cols = m.todoColumns()
		for _, t := range m.todos.Records() {
			rows = append(rows, table.Row{
				t.Task,
				oneLine(t.Description),
				t.DueDate.String(),
			})
			ids = append(ids, t.ID)
		}
	}

	// Rows must never have more cells than there are columns.
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.SetCursor(m.table.Cursor())
	m.rowIDs = ids
}

func (m *Model) contentWidth() int {
	return max(m.width-4, 40)
}

func (m *Model) todoColumns() []table.Column {
	w := m.contentWidth() - 6 // cell padding
	due := 12
	task := (w - due) / 3
	return []table.Column{
		{Title: "Nhiệm vụ", Width: task},
		{Title: "Mô tả", Width: w - due - task},
		{Title: "Hạn chót", Width: due},
	}
}

func (m *Model) orderColumns() []table.Column {
	w := m.contentWidth() - 10
	id, date, total, status := 12, 16, 12, 14
	dateTitle := "Ngày đặt hàng"
	switch m.orders.Sort() {
	case manager.SortAscending:
		dateTitle += " ↑"
	case manager.SortDescending:
		dateTitle += " ↓"
	case manager.SortNone:
	}
	return []table.Column{
		{Title: "Mã đơn hàng", Width: id},
		{Title: "Khách hàng", Width: max(w-id-date-total-status, 10)},
		{Title: dateTitle, Width: date},
		{Title: "Tổng tiền", Width: total},
		{Title: "Trạng thái", Width: status},
	}
}

// resize fits the table to the window.
func (m *Model) resize() {
	m.table.SetWidth(m.contentWidth())
	// header, view bar, footer and padding
	m.table.SetHeight(max(m.height-10, 5))
	m.refreshTable()
}
