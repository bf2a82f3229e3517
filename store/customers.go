package store

import (
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"

	"orderdesk/models"
)

const FirstCustomerID = 1

type CustomerForm struct {
	Name    string
	Contact string
	Note    string
}

// Directory is the customer address book. Orders copy customer fields at save
// time, so nothing here is referenced by an order.
type Directory struct {
	customers []models.Customer
	form      CustomerForm
	nextID    int
	editing   int
	isEdit    bool
	Logger    *log.Logger
}

func NewDirectory(logger *log.Logger) *Directory {
	return &Directory{nextID: FirstCustomerID, Logger: logger}
}

func (d *Directory) SetForm(name, contact, note string) {
	d.form = CustomerForm{Name: name, Contact: contact, Note: note}
}

func (d *Directory) Form() CustomerForm {
	return d.form
}

// SaveCustomer is a no-op when the trimmed name is blank.
func (d *Directory) SaveCustomer() (models.Customer, bool) {
	c := models.Customer{
		Name:    strings.TrimSpace(d.form.Name),
		Contact: strings.TrimSpace(d.form.Contact),
		Note:    strings.TrimSpace(d.form.Note),
	}
	if c.Name == "" {
		return models.Customer{}, false
	}
	if d.isEdit {
		c.ID = d.editing
		if i := d.index(d.editing); i >= 0 {
			d.customers[i] = c
		}
		d.isEdit = false
		d.Logger.Infof("customer %d updated", c.ID)
	} else {
		c.ID = d.nextID
		d.nextID++
		d.customers = append(d.customers, c)
		d.Logger.Infof("customer %d created", c.ID)
	}
	d.form = CustomerForm{}
	return c, true
}

func (d *Directory) DeleteCustomer(id int) bool {
	i := d.index(id)
	if i < 0 {
		return false
	}
	d.customers = append(d.customers[:i], d.customers[i+1:]...)
	if d.isEdit && d.editing == id {
		d.CancelEdit()
	}
	d.Logger.Infof("customer %d deleted", id)
	return true
}

func (d *Directory) LoadForEdit(id int) bool {
	i := d.index(id)
	if i < 0 {
		return false
	}
	c := d.customers[i]
	d.editing = id
	d.isEdit = true
	d.form = CustomerForm{Name: c.Name, Contact: c.Contact, Note: c.Note}
	return true
}

func (d *Directory) CancelEdit() {
	d.isEdit = false
	d.form = CustomerForm{}
}

func (d *Directory) Editing() (int, bool) {
	if !d.isEdit {
		return 0, false
	}
	return d.editing, true
}

func (d *Directory) Customer(id int) (models.Customer, bool) {
	i := d.index(id)
	if i < 0 {
		return models.Customer{}, false
	}
	return d.customers[i], true
}

func (d *Directory) Customers() []models.Customer {
	res := make([]models.Customer, len(d.customers))
	copy(res, d.customers)
	return res
}

// FindByContact returns the first customer whose contact matches after
// normalisation.
func (d *Directory) FindByContact(contact string) (models.Customer, bool) {
	want := NormalizeContact(contact)
	if want == "" {
		return models.Customer{}, false
	}
	for _, c := range d.customers {
		if NormalizeContact(c.Contact) == want {
			return c, true
		}
	}
	return models.Customer{}, false
}

func (d *Directory) index(id int) int {
	for i, c := range d.customers {
		if c.ID == id {
			return i
		}
	}
	return -1
}

var (
	phoneChars     = regexp.MustCompile(`^[\d\s\-.()+]+$`)
	phoneSeparator = regexp.MustCompile(`[\s\-.()]`)
	italianPrefix  = regexp.MustCompile(`^(\+39|0039)`)
)

// NormalizeContact reduces phone numbers to bare digits without the Italian
// country prefix. Anything else (e-mail addresses) is trimmed and lowercased.
func NormalizeContact(contact string) string {
	contact = strings.TrimSpace(contact)
	if contact == "" || !phoneChars.MatchString(contact) {
		return strings.ToLower(contact)
	}
	n := phoneSeparator.ReplaceAllString(contact, "")
	n = italianPrefix.ReplaceAllString(n, "")
	return strings.TrimPrefix(n, "+")
}
