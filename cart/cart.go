package cart

import (
	"github.com/gammazero/deque"
	"github.com/shopspring/decimal"

	"orderdesk/models"
)

// Buffer is the in-progress cart. Items are only appended, removed or
// cleared, never edited in place.
type Buffer interface {
	Append(items ...models.CartItem)
	Remove(index int) bool
	Clear()
	Replace(items []models.CartItem)
	Len() int
	At(i int) models.CartItem
	Items() []models.CartItem
}

type DequeCart struct {
	buf deque.Deque[models.CartItem]
}

func New() *DequeCart {
	return &DequeCart{}
}

func (d *DequeCart) Append(items ...models.CartItem) {
	for _, it := range items {
		d.buf.PushBack(it)
	}
}

// Remove drops the item at index and reports whether anything was removed.
func (d *DequeCart) Remove(index int) bool {
	if index < 0 || index >= d.buf.Len() {
		return false
	}
	d.buf.Remove(index)
	return true
}

func (d *DequeCart) Clear() {
	d.buf.Clear()
}

func (d *DequeCart) Replace(items []models.CartItem) {
	d.buf.Clear()
	d.Append(items...)
}

func (d *DequeCart) Len() int {
	return d.buf.Len()
}

func (d *DequeCart) At(i int) models.CartItem {
	return d.buf.At(i)
}

// Items returns a copy; an empty cart yields an empty, non-nil slice.
func (d *DequeCart) Items() []models.CartItem {
	res := make([]models.CartItem, 0, d.buf.Len())
	for i := 0; i < d.buf.Len(); i++ {
		res = append(res, d.buf.At(i))
	}
	return res
}

func TotalTrays(b Buffer) int {
	total := 0
	for _, it := range b.Items() {
		total += it.Quantity
	}
	return total
}

func TotalCoveredGuests(b Buffer) int {
	total := 0
	for _, it := range b.Items() {
		total += it.CoveredGuests()
	}
	return total
}

func Total(b Buffer) decimal.Decimal {
	total := decimal.Zero
	for _, it := range b.Items() {
		total = total.Add(it.LineTotal())
	}
	return total
}
