// Package intake replays a YAML script of customers and orders against a
// session, the same way a person at the counter would enter them.
package intake

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"orderdesk/customerrors"
	"orderdesk/session"
	"orderdesk/validation"
)

type Customer struct {
	Name    string `yaml:"name"`
	Contact string `yaml:"contact"`
	Note    string `yaml:"note"`
}

type Item struct {
	Category string `yaml:"category"`
	Dish     string `yaml:"dish"`
	Portion  int    `yaml:"portion"`
	Quantity int    `yaml:"quantity"`
}

// Order names its customer directly, or by contact when the customer is in
// the address book; in that case the directory entry fills the form.
type Order struct {
	Customer string `yaml:"customer"`
	Contact  string `yaml:"contact"`
	Note     string `yaml:"note"`
	Items    []Item `yaml:"items"`
}

type Script struct {
	Customers []Customer `yaml:"customers"`
	Orders    []Order    `yaml:"orders"`
}

func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("cant unmarshall intake script: %w", err)
	}
	return s, nil
}

func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, err
	}
	return Parse(data)
}

// Rejection is one script entry that did not make it into the session.
type Rejection struct {
	Kind     string
	Index    int
	Messages []string
}

func (r Rejection) String() string {
	return fmt.Sprintf("%s #%d: %v", r.Kind, r.Index+1, r.Messages)
}

type Result struct {
	Customers int
	Orders    int
	Rejected  []Rejection
}

const (
	KindCustomer = "customer"
	KindItem     = "item"
	KindOrder    = "order"
)

// Replay saves every customer, then composes and saves every order. Invalid
// items are skipped and reported; an order left without valid items is
// rejected as a whole. Replay never aborts half way.
func Replay(sess *session.Session, script Script) Result {
	var res Result
	for i, c := range script.Customers {
		sess.Customers.SetForm(c.Name, c.Contact, c.Note)
		if _, ok := sess.Customers.SaveCustomer(); !ok {
			res.reject(sess, Rejection{Kind: KindCustomer, Index: i, Messages: []string{validation.MsgCustomerRequired}})
			sess.Customers.SetForm("", "", "")
			continue
		}
		res.Customers++
	}

	for i, o := range script.Orders {
		sess.Orders.SetForm(o.Customer, o.Contact, o.Note)
		if c, ok := sess.Customers.FindByContact(o.Contact); ok && o.Customer == "" {
			sess.ApplyCustomerToOrderForm(c.ID)
		}
		for j, it := range o.Items {
			if err := sess.AddItem(it.Category, it.Dish, it.Portion, it.Quantity); err != nil {
				res.reject(sess, Rejection{Kind: KindItem, Index: j, Messages: messages(err)})
			}
		}
		if _, err := sess.SaveOrder(); err != nil {
			res.reject(sess, Rejection{Kind: KindOrder, Index: i, Messages: messages(err)})
			sess.Orders.CancelEdit()
			continue
		}
		res.Orders++
	}
	sess.Logger.Infof("intake: %d customers, %d orders, %d rejected", res.Customers, res.Orders, len(res.Rejected))
	return res
}

func (r *Result) reject(sess *session.Session, rej Rejection) {
	sess.Logger.WithField("kind", rej.Kind).Warnln(rej.String())
	r.Rejected = append(r.Rejected, rej)
}

func messages(err error) []string {
	var verr *customerrors.ValidationError
	if errors.As(err, &verr) {
		return verr.Messages
	}
	return []string{err.Error()}
}
