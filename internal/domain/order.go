package domain

import (
	"slices"
	"time"
)

// Product is a catalog entry referenced by an order.
type Product struct {
	Name  string `json:"name" yaml:"name"`
	Price int64  `json:"price" yaml:"price"`
}

// Order is one entry of the order list.
// Fields are ordered to minimize memory padding.
type Order struct {
	Created     time.Time   `json:"createdAt" yaml:"createdAt"`     // Creation time (ordering key)
	OrderDate   Date        `json:"orderDate" yaml:"orderDate"`     // Order date
	ID          string      `json:"id" yaml:"id"`                   // Unique identifier
	Customer    string      `json:"customer" yaml:"customer"`       // Customer name
	Status      OrderStatus `json:"status" yaml:"status"`           // Current status
	Products    []Product   `json:"products" yaml:"products"`       // Selected line items
	TotalAmount int64       `json:"totalAmount" yaml:"totalAmount"` // Sum of product prices (derived)
}

// RecordID returns the order's identifier.
func (o Order) RecordID() string { return o.ID }

// CreatedAt returns the order's creation time.
func (o Order) CreatedAt() time.Time { return o.Created }

// ProductNames returns the names of the order's products.
func (o Order) ProductNames() []string {
	names := make([]string, 0, len(o.Products))
	for _, p := range o.Products {
		names = append(names, p.Name)
	}
	return names
}

// Catalog is the fixed product list orders are built from.
var Catalog = []Product{
	{Name: "Sản phẩm 1", Price: 100},
	{Name: "Sản phẩm 2", Price: 200},
	{Name: "Sản phẩm 3", Price: 300},
}

// SuggestedCustomers are offered by the customer autocomplete.
var SuggestedCustomers = []string{"Nguyễn Văn A", "Nguyễn Văn B", "Nguyễn Văn C"}

// CatalogNames returns the product names in catalog order.
func CatalogNames() []string {
	names := make([]string, 0, len(Catalog))
	for _, p := range Catalog {
		names = append(names, p.Name)
	}
	return names
}

// ResolveProducts maps selected names to catalog products.
// The result follows catalog order; duplicates and selection order are ignored.
func ResolveProducts(names []string) ([]Product, error) {
	if len(names) == 0 {
		return nil, &ProductSelectionError{Empty: true}
	}

	var unknown []string
	for _, n := range names {
		if !slices.ContainsFunc(Catalog, func(p Product) bool { return p.Name == n }) {
			unknown = append(unknown, n)
		}
	}
	if len(unknown) > 0 {
		return nil, &ProductSelectionError{Unknown: unknown}
	}

	selected := make([]Product, 0, len(names))
	for _, p := range Catalog {
		if slices.Contains(names, p.Name) {
			selected = append(selected, p)
		}
	}
	return selected, nil
}

// TotalOf returns the sum of product prices.
func TotalOf(products []Product) int64 {
	var total int64
	for _, p := range products {
		total += p.Price
	}
	return total
}
