package models

import (
	"github.com/shopspring/decimal"
)

type Unit string

const (
	PerHundredGrams Unit = "per-100g"
	PerPiece        Unit = "per-piece"
	PerPortion      Unit = "per-portion"
	PerDish         Unit = "per-dish"
	PerTrayOfTwo    Unit = "per-tray-of-2"
)

var unitLabels = map[Unit]string{
	PerHundredGrams: "/100g",
	PerPiece:        "/pc",
	PerPortion:      "/portion",
	PerDish:         "/dish",
	PerTrayOfTwo:    "/tray",
}

func (u Unit) Valid() bool {
	_, ok := unitLabels[u]
	return ok
}

// Label is the short suffix printed after a price, empty for unknown units.
func (u Unit) Label() string {
	return unitLabels[u]
}

type MenuItem struct {
	Name        string
	Price       decimal.Decimal
	Unit        Unit
	Description string
}

type Category struct {
	Name  string
	Items []MenuItem
	Note  string
}

// CartItem is a snapshot: UnitPrice and Unit are copied from the menu when the
// item is added and never follow later menu changes.
type CartItem struct {
	Category  string
	Dish      string
	Portion   int
	Quantity  int
	UnitPrice decimal.Decimal
	Unit      Unit
}

// CoveredGuests is trays times the number of people one tray serves.
func (c CartItem) CoveredGuests() int {
	return c.Quantity * c.Portion
}

func (c CartItem) LineTotal() decimal.Decimal {
	return c.UnitPrice.Mul(decimal.NewFromInt(int64(c.Quantity)))
}

type Order struct {
	ID           int
	CustomerName string
	ContactInfo  string
	Note         string
	Items        []CartItem
}

func (o Order) Clone() Order {
	items := make([]CartItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}

func (o Order) TotalTrays() int {
	total := 0
	for _, it := range o.Items {
		total += it.Quantity
	}
	return total
}

func (o Order) TotalCoveredGuests() int {
	total := 0
	for _, it := range o.Items {
		total += it.CoveredGuests()
	}
	return total
}

type Customer struct {
	ID      int
	Name    string
	Contact string
	Note    string
}
