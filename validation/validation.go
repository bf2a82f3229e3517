// Package validation holds the pure checks run before the order store is
// mutated. Nothing here has side effects, so callers may validate
// speculatively, for example to decide whether a save control is enabled.
package validation

import (
	"fmt"
	"strings"

	validator "gopkg.in/go-playground/validator.v9"

	"orderdesk/customerrors"
	"orderdesk/models"
)

const (
	MsgCustomerRequired = "customer name is required"
	MsgContactRequired  = "contact is required"
	MsgItemsRequired    = "add at least one dish"
)

const (
	tagNotBlank        = "notblank"
	tagCategoryInMenu  = "inmenu"
	tagDishInCategory  = "incategory"
	portionConstraint  = "must be 1, 2 or 3"
	quantityConstraint = "must be >= 1"
)

// Lookup is the part of the menu catalog validation needs.
type Lookup interface {
	HasCategory(category string) bool
	HasDish(category, dish string) bool
}

// OrderInput is an order as typed into the form. Field order is the order
// messages are reported in.
type OrderInput struct {
	CustomerName string            `validate:"notblank"`
	ContactInfo  string            `validate:"notblank"`
	Items        []models.CartItem `validate:"min=1"`
}

// CartItemInput is one dish about to be added to the cart. The portion set
// is fixed at {1,2,3}.
type CartItemInput struct {
	Category string
	Dish     string
	Portion  int `validate:"oneof=1 2 3"`
	Quantity int `validate:"min=1"`

	menu Lookup
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation(tagNotBlank, notBlank); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(validateCartItemMenu, CartItemInput{})
	return v
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateCartItemMenu reports a missing category or, when the category
// exists, a missing dish. Never both.
func validateCartItemMenu(structLevel validator.StructLevel) {
	in := structLevel.Current().Interface().(CartItemInput)
	if !in.menu.HasCategory(in.Category) {
		structLevel.ReportError(in.Category, "Category", "Category", tagCategoryInMenu, "")
	} else if !in.menu.HasDish(in.Category, in.Dish) {
		structLevel.ReportError(in.Dish, "Dish", "Dish", tagDishInCategory, in.Category)
	}
}

// ValidateOrder checks every rule and reports messages in a fixed order:
// customer, contact, items.
func ValidateOrder(customerName, contactInfo string, items []models.CartItem) (bool, []string) {
	in := OrderInput{CustomerName: customerName, ContactInfo: contactInfo, Items: items}
	return result(validate.Struct(in), []string{"CustomerName", "ContactInfo", "Items"}, func(fe validator.FieldError) string {
		switch fe.StructField() {
		case "CustomerName":
			return MsgCustomerRequired
		case "ContactInfo":
			return MsgContactRequired
		default:
			return MsgItemsRequired
		}
	})
}

// ValidateCartItem reports every violation together: menu membership, then
// portion, then quantity.
func ValidateCartItem(category, dish string, portion, quantity int, catalog Lookup) (bool, []string) {
	in := CartItemInput{Category: category, Dish: dish, Portion: portion, Quantity: quantity, menu: catalog}
	return result(validate.Struct(in), []string{"Category", "Dish", "Portion", "Quantity"}, func(fe validator.FieldError) string {
		switch fe.StructField() {
		case "Category":
			return fmt.Sprintf("category %q not found in menu", category)
		case "Dish":
			return fmt.Sprintf("dish %q not found in %q", dish, category)
		case "Portion":
			return fmt.Sprintf("portion %d is not valid (%s)", portion, portionConstraint)
		default:
			return fmt.Sprintf("quantity %d is not valid (%s)", quantity, quantityConstraint)
		}
	})
}

// result turns validator output into messages ordered by fields, whatever
// order the validator found them in.
func result(err error, fields []string, message func(validator.FieldError) string) (bool, []string) {
	if err == nil {
		return true, nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false, []string{err.Error()}
	}
	byField := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, seen := byField[fe.StructField()]; !seen {
			byField[fe.StructField()] = message(fe)
		}
	}
	msgs := make([]string, 0, len(byField))
	for _, f := range fields {
		if m, ok := byField[f]; ok {
			msgs = append(msgs, m)
		}
	}
	return false, msgs
}

// AsError turns a failed validation result into a *customerrors.ValidationError.
func AsError(ok bool, msgs []string) error {
	if ok {
		return nil
	}
	return customerrors.NewValidationError(msgs)
}
