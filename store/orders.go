package store

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"orderdesk/cart"
	"orderdesk/models"
)

const FirstOrderID = 100

// PriceLookup resolves the current price and unit of a dish.
type PriceLookup interface {
	FindItem(category, dish string) (models.MenuItem, error)
}

type OrderForm struct {
	Customer string
	Contact  string
	Note     string
}

// OrderStore holds the orders of one session, the in-progress cart and the
// order form. It does not validate: callers run the validation package first.
type OrderStore struct {
	menu    PriceLookup
	orders  []models.Order
	cart    cart.Buffer
	form    OrderForm
	nextID  int
	editing int
	isEdit  bool
	Logger  *log.Logger
}

func NewOrderStore(menu PriceLookup, logger *log.Logger) *OrderStore {
	return &OrderStore{menu: menu, cart: cart.New(), nextID: FirstOrderID, Logger: logger}
}

// AddToCart snapshots the dish's current price and unit. Unknown dishes are
// staged with a zero price.
func (s *OrderStore) AddToCart(category, dish string, portion, quantity int) {
	item := models.CartItem{Category: category, Dish: dish, Portion: portion, Quantity: quantity}
	if mi, err := s.menu.FindItem(category, dish); err == nil {
		item.UnitPrice = mi.Price
		item.Unit = mi.Unit
	} else {
		s.Logger.Debugf("adding unpriced item: %v", err)
	}
	s.cart.Append(item)
	s.Logger.Tracef("cart: +%s/%s for %d x%d", category, dish, portion, quantity)
}

func (s *OrderStore) RemoveFromCart(index int) {
	if !s.cart.Remove(index) {
		s.Logger.Debugf("cart: no item at index %d", index)
	}
}

func (s *OrderStore) ClearCart() {
	s.cart.Clear()
}

func (s *OrderStore) Cart() []models.CartItem {
	return s.cart.Items()
}

func (s *OrderStore) CartBuffer() cart.Buffer {
	return s.cart
}

func (s *OrderStore) SetForm(customer, contact, note string) {
	s.form = OrderForm{Customer: customer, Contact: contact, Note: note}
}

func (s *OrderStore) Form() OrderForm {
	return s.form
}

// CommitOrder saves the cart and form. In edit mode it overwrites the order
// being edited and keeps its id; otherwise it appends a new order.
func (s *OrderStore) CommitOrder() models.Order {
	order := models.Order{
		CustomerName: strings.TrimSpace(s.form.Customer),
		ContactInfo:  strings.TrimSpace(s.form.Contact),
		Note:         strings.TrimSpace(s.form.Note),
		Items:        s.cart.Items(),
	}
	if s.isEdit {
		order.ID = s.editing
		if i := s.index(s.editing); i >= 0 {
			s.orders[i] = order
		}
		s.Logger.Infof("order %d updated, %d items", order.ID, len(order.Items))
		s.isEdit = false
	} else {
		order.ID = s.nextID
		s.nextID++
		s.orders = append(s.orders, order)
		s.Logger.Infof("order %d created, %d items", order.ID, len(order.Items))
	}
	s.resetForm()
	return order.Clone()
}

func (s *OrderStore) LoadForEdit(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	o := s.orders[i]
	s.editing = id
	s.isEdit = true
	s.form = OrderForm{Customer: o.CustomerName, Contact: o.ContactInfo, Note: o.Note}
	s.cart.Replace(o.Items)
	return true
}

// DeleteOrder removes the order; if it was being edited the edit is aborted.
func (s *OrderStore) DeleteOrder(id int) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.orders = append(s.orders[:i], s.orders[i+1:]...)
	if s.isEdit && s.editing == id {
		s.isEdit = false
		s.resetForm()
	}
	s.Logger.Infof("order %d deleted", id)
	return true
}

func (s *OrderStore) CancelEdit() {
	s.isEdit = false
	s.resetForm()
}

func (s *OrderStore) Editing() (int, bool) {
	if !s.isEdit {
		return 0, false
	}
	return s.editing, true
}

// NextID is the id the next new order will get.
func (s *OrderStore) NextID() int {
	return s.nextID
}

func (s *OrderStore) Order(id int) (models.Order, bool) {
	i := s.index(id)
	if i < 0 {
		return models.Order{}, false
	}
	return s.orders[i].Clone(), true
}

func (s *OrderStore) Orders() []models.Order {
	res := make([]models.Order, 0, len(s.orders))
	for _, o := range s.orders {
		res = append(res, o.Clone())
	}
	return res
}

func (s *OrderStore) Len() int {
	return len(s.orders)
}

func (s *OrderStore) index(id int) int {
	for i, o := range s.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

func (s *OrderStore) resetForm() {
	s.cart.Clear()
	s.form = OrderForm{}
}
