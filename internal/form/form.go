// Package form describes the create/edit form fields and validates required values.
package form

import (
	"errors"
	"fmt"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/runoshun/locrec/internal/domain"
	"github.com/runoshun/locrec/internal/manager"
)

// Kind is the input widget used for a field.
type Kind int

const (
	KindText Kind = iota
	KindDate
	KindAutocomplete
	KindSelect
	KindMultiSelect
	KindReadOnly
)

// Field describes one form input.
// Fields are ordered to minimize memory padding.
type Field struct {
	Name     string   // Key in Values
	Label    string   // Displayed label
	Message  string   // Shown when a required value is missing
	Rule     string   // validator tag; empty means optional
	Options  []string // Choices for select, multi-select and autocomplete
	Kind     Kind
	Required bool
}

// Field names.
const (
	FieldTask        = "task"
	FieldDescription = "description"
	FieldDueDate     = "dueDate"
	FieldCustomer    = "customer"
	FieldOrderDate   = "orderDate"
	FieldProducts    = "products"
	FieldStatus      = "status"
	FieldTotal       = "totalAmount"
)

const (
	ruleRequired    = "required"
	ruleNonEmptySet = "required,min=1"
)

var amountPrinter = message.NewPrinter(language.English)

func requiredMessage(label string) string {
	return label + " là bắt buộc"
}

// TodoFields returns the to-do form layout.
func TodoFields() []Field {
	return []Field{
		{Name: FieldTask, Label: "Nhiệm vụ", Message: "Hãy nhập nhiệm vụ!", Rule: ruleRequired, Kind: KindText, Required: true},
		{Name: FieldDescription, Label: "Mô tả", Message: "Hãy nhập mô tả!", Rule: ruleRequired, Kind: KindText, Required: true},
		{Name: FieldDueDate, Label: "Hạn chót", Message: "Hãy chọn hạn chót!", Rule: ruleRequired, Kind: KindDate, Required: true},
	}
}

// OrderFields returns the order form layout.
func OrderFields() []Field {
	statuses := make([]string, 0, len(domain.AllOrderStatuses()))
	for _, s := range domain.AllOrderStatuses() {
		statuses = append(statuses, string(s))
	}
	return []Field{
		{Name: FieldCustomer, Label: "Khách hàng", Message: requiredMessage("Khách hàng"), Rule: ruleRequired, Kind: KindAutocomplete, Options: domain.SuggestedCustomers, Required: true},
		{Name: FieldOrderDate, Label: "Ngày đặt hàng", Message: requiredMessage("Ngày đặt hàng"), Rule: ruleRequired, Kind: KindDate, Required: true},
		{Name: FieldProducts, Label: "Sản phẩm", Message: requiredMessage("Sản phẩm"), Rule: ruleNonEmptySet, Kind: KindMultiSelect, Options: domain.CatalogNames(), Required: true},
		{Name: FieldStatus, Label: "Trạng thái", Message: requiredMessage("Trạng thái"), Rule: ruleRequired, Kind: KindSelect, Options: statuses, Required: true},
		{Name: FieldTotal, Label: "Tổng tiền", Kind: KindReadOnly},
	}
}

// Values holds the raw form input keyed by field name.
// Single-valued fields use one element.
type Values map[string][]string

// Get returns the first value of a field, or "".
func (v Values) Get(name string) string {
	if vals := v[name]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

// Set replaces the value of a single-valued field.
func (v Values) Set(name, value string) {
	v[name] = []string{value}
}

// RequiredError reports a required field without a value.
type RequiredError struct {
	Field   string
	Message string
}

func (e *RequiredError) Error() string {
	return e.Message
}

// Validator checks form values against field rules.
type Validator struct {
	v *validatorv10.Validate
}

// NewValidator returns a Validator.
func NewValidator() *Validator {
	return &Validator{v: validatorv10.New()}
}

// Validate returns a *RequiredError for the first field, in layout order,
// whose rule fails.
func (val *Validator) Validate(fields []Field, values Values) error {
	for _, f := range fields {
		if f.Rule == "" {
			continue
		}
		var err error
		if f.Kind == KindMultiSelect {
			err = val.v.Var(nonBlank(values[f.Name]), f.Rule)
		} else {
			err = val.v.Var(strings.TrimSpace(values.Get(f.Name)), f.Rule)
		}
		if err == nil {
			continue
		}
		var verrs validatorv10.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate %s: %w", f.Name, err)
		}
		return &RequiredError{Field: f.Name, Message: f.Message}
	}
	return nil
}

func nonBlank(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, s := range vals {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

// TodoInput validates values and converts them to a manager.TodoInput.
func (val *Validator) TodoInput(values Values) (manager.TodoInput, error) {
	if err := val.Validate(TodoFields(), values); err != nil {
		return manager.TodoInput{}, err
	}
	due, err := domain.ParseDate(values.Get(FieldDueDate))
	if err != nil {
		return manager.TodoInput{}, err
	}
	return manager.TodoInput{
		Task:        values.Get(FieldTask),
		Description: values.Get(FieldDescription),
		DueDate:     due,
	}, nil
}

// OrderInput validates values and converts them to a manager.OrderInput.
func (val *Validator) OrderInput(values Values) (manager.OrderInput, error) {
	if err := val.Validate(OrderFields(), values); err != nil {
		return manager.OrderInput{}, err
	}
	date, err := domain.ParseDate(values.Get(FieldOrderDate))
	if err != nil {
		return manager.OrderInput{}, err
	}
	status, err := domain.ParseOrderStatus(values.Get(FieldStatus))
	if err != nil {
		return manager.OrderInput{}, err
	}
	return manager.OrderInput{
		Customer:  values.Get(FieldCustomer),
		OrderDate: date,
		Products:  nonBlank(values[FieldProducts]),
		Status:    status,
	}, nil
}

// TodoValues returns the form values pre-filled from a to-do.
func TodoValues(todo domain.Todo) Values {
	return Values{
		FieldTask:        {todo.Task},
		FieldDescription: {todo.Description},
		FieldDueDate:     {todo.DueDate.String()},
	}
}

// OrderValues returns the form values pre-filled from an order.
func OrderValues(order domain.Order) Values {
	return Values{
		FieldCustomer:  {order.Customer},
		FieldOrderDate: {order.OrderDate.String()},
		FieldProducts:  order.ProductNames(),
		FieldStatus:    {string(order.Status)},
		FieldTotal:     {FormatAmount(order.TotalAmount)},
	}
}

// LiveTotal returns the total of the currently selected products.
// Unknown names contribute nothing.
func LiveTotal(values Values) int64 {
	var total int64
	for _, p := range domain.Catalog {
		for _, name := range values[FieldProducts] {
			if name == p.Name {
				total += p.Price
				break
			}
		}
	}
	return total
}

// FormatAmount renders an amount with thousands separators.
func FormatAmount(amount int64) string {
	return amountPrinter.Sprintf("%d", amount)
}
