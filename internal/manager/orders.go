package manager

import (
	"context"
	"fmt"
	"sync"

	"github.com/runoshun/locrec/internal/domain"
)

// OrderInput contains the form values of an order.
// Fields are ordered to minimize memory padding.
type OrderInput struct {
	OrderDate domain.Date
	Customer  string
	Status    domain.OrderStatus
	Products  []string // Catalog product names
}

// Orders manages the order list stored under domain.OrderListKey.
// Fields are ordered to minimize memory padding.
type Orders struct {
	*Manager[domain.Order]
	clock  domain.Clock
	ids    domain.IDGenerator
	filter Filter
	viewMu sync.RWMutex
	sort   SortDirection
}

// NewOrders creates an Orders manager.
func NewOrders(store domain.KVStore, clock domain.Clock, ids domain.IDGenerator, logger domain.Logger) *Orders {
	return &Orders{
		Manager: New[domain.Order](store, domain.OrderListKey, logger),
		clock:   clock,
		ids:     ids,
	}
}

// Submit creates an order, or replaces the one being edited.
// Products are resolved against the catalog and the total is derived from them.
// A selection that cannot be resolved returns *domain.ProductSelectionError
// and leaves the list and the modal unchanged.
func (o *Orders) Submit(ctx context.Context, in OrderInput) (domain.Order, error) {
	products, err := domain.ResolveProducts(in.Products)
	if err != nil {
		o.logger.Warn(o.key, categoryForm, fmt.Sprintf("rejected product selection: %v", err))
		return domain.Order{}, err
	}
	if !in.Status.IsValid() {
		return domain.Order{}, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, in.Status)
	}

	return o.submit(ctx, func(prev *domain.Order) (domain.Order, error) {
		order := domain.Order{
			Customer:    in.Customer,
			OrderDate:   in.OrderDate,
			Products:    products,
			TotalAmount: domain.TotalOf(products),
			Status:      in.Status,
		}
		if prev != nil {
			order.ID = prev.ID
			order.Created = prev.Created
		} else {
			order.ID = o.ids.NewID()
			order.Created = o.clock.Now()
		}
		return order, nil
	})
}

// CheckCancel returns nil if the order may be cancelled.
func (o *Orders) CheckCancel(id string) error {
	order, err := o.Get(id)
	if err != nil {
		return err
	}
	if !order.Status.CanCancel() {
		return fmt.Errorf("%w: status is %q", domain.ErrNotCancellable, order.Status)
	}
	return nil
}

// Cancel removes a pending order. Orders in any other status are left untouched.
func (o *Orders) Cancel(ctx context.Context, id string) error {
	if err := o.CheckCancel(id); err != nil {
		o.logger.Info(o.key, categorySave, fmt.Sprintf("cancel refused for %s: %v", id, err))
		return err
	}
	return o.Remove(ctx, id)
}

// SetFilter replaces the view filter. The list and the store are not touched.
func (o *Orders) SetFilter(f Filter) {
	o.viewMu.Lock()
	defer o.viewMu.Unlock()
	o.filter = f
}

// Filter returns the current view filter.
func (o *Orders) Filter() Filter {
	o.viewMu.RLock()
	defer o.viewMu.RUnlock()
	return o.filter
}

// SetSort replaces the order-date sort direction of the view.
func (o *Orders) SetSort(dir SortDirection) {
	o.viewMu.Lock()
	defer o.viewMu.Unlock()
	o.sort = dir
}

// Sort returns the current order-date sort direction.
func (o *Orders) Sort() SortDirection {
	o.viewMu.RLock()
	defer o.viewMu.RUnlock()
	return o.sort
}

// Visible returns the orders passing the filter, sorted by the view's direction.
func (o *Orders) Visible() []domain.Order {
	f, dir := o.Filter(), o.Sort()
	return SortByOrderDate(f.Apply(o.Records()), dir)
}

// InputOfOrder returns the form values of an existing order.
func InputOfOrder(order domain.Order) OrderInput {
	return OrderInput{
		Customer:  order.Customer,
		OrderDate: order.OrderDate,
		Products:  order.ProductNames(),
		Status:    order.Status,
	}
}
