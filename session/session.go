// Package session ties the menu catalog, the order store and the customer
// directory into the state of one interactive session.
//
// A Session has exactly one writer. It holds no locks; a host serving several
// users creates one Session per user and never shares them.
package session

import (
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"orderdesk/aggregate"
	"orderdesk/cart"
	"orderdesk/menu"
	"orderdesk/models"
	"orderdesk/store"
	"orderdesk/validation"
)

type Session struct {
	Catalog   *menu.Catalog
	Orders    *store.OrderStore
	Customers *store.Directory
	Logger    *log.Logger
}

func New(catalog *menu.Catalog, logger *log.Logger) *Session {
	return &Session{
		Catalog:   catalog,
		Orders:    store.NewOrderStore(catalog, logger),
		Customers: store.NewDirectory(logger),
		Logger:    logger,
	}
}

// ApplyCustomerToOrderForm fills the order form from the address book. The
// customer's note only lands in the order note when that is still empty.
func (s *Session) ApplyCustomerToOrderForm(customerID int) bool {
	c, ok := s.Customers.Customer(customerID)
	if !ok {
		return false
	}
	form := s.Orders.Form()
	note := form.Note
	if note == "" && c.Note != "" {
		note = c.Note
	}
	s.Orders.SetForm(c.Name, c.Contact, note)
	return true
}

// AddItem validates a cart item against the catalog and stages it.
func (s *Session) AddItem(category, dish string, portion, quantity int) error {
	if err := validation.AsError(validation.ValidateCartItem(category, dish, portion, quantity, s.Catalog)); err != nil {
		s.Logger.WithField("dish", dish).Warnln(err)
		return err
	}
	s.Orders.AddToCart(category, dish, portion, quantity)
	return nil
}

// CartSummary is what the order form shows under the cart.
type CartSummary struct {
	Items         int
	Trays         int
	CoveredGuests int
	Total         decimal.Decimal
}

func (s *Session) CartSummary() CartSummary {
	b := s.Orders.CartBuffer()
	return CartSummary{
		Items:         b.Len(),
		Trays:         cart.TotalTrays(b),
		CoveredGuests: cart.TotalCoveredGuests(b),
		Total:         cart.Total(b),
	}
}

// CanSave reports whether the current form and cart would pass validation.
func (s *Session) CanSave() (bool, []string) {
	form := s.Orders.Form()
	return validation.ValidateOrder(form.Customer, form.Contact, s.Orders.Cart())
}

// SaveOrder validates the form and cart, then commits.
func (s *Session) SaveOrder() (models.Order, error) {
	if err := validation.AsError(s.CanSave()); err != nil {
		s.Logger.Warnln(err)
		return models.Order{}, err
	}
	return s.Orders.CommitOrder(), nil
}

type Snapshot struct {
	Orders    []models.Order
	Customers []models.Customer
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{Orders: s.Orders.Orders(), Customers: s.Customers.Customers()}
}

// Rows flattens the current orders.
func (s *Session) Rows() []aggregate.Row {
	return aggregate.Flatten(s.Orders.Orders())
}
