package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/customerrors"
	"orderdesk/models"
)

type fakeMenu map[string][]string

func (m fakeMenu) HasCategory(category string) bool {
	_, ok := m[category]
	return ok
}

func (m fakeMenu) HasDish(category, dish string) bool {
	for _, d := range m[category] {
		if d == dish {
			return true
		}
	}
	return false
}

var menu = fakeMenu{
	"Antipasti": {"Insalata russa"},
	"Primi":     {"Lasagna mazzancolle"},
}

var oneItem = []models.CartItem{{Category: "Antipasti", Dish: "Insalata russa", Portion: 1, Quantity: 1}}

func TestValidateOrderAccepts(t *testing.T) {
	cases := []struct{ customer, contact string }{
		{"Mario Rossi", "+39 333 1234567"},
		{"O'Brien, José-María", "test@test.com"},
		{strings.Repeat("A", 500), "test@test.com"},
	}
	for _, c := range cases {
		ok, errs := ValidateOrder(c.customer, c.contact, oneItem)
		assert.True(t, ok)
		assert.Empty(t, errs)
	}
}

func TestValidateOrderSingleFailures(t *testing.T) {
	cases := []struct {
		name              string
		customer, contact string
		items             []models.CartItem
		want              string
	}{
		{"empty customer", "", "x", oneItem, MsgCustomerRequired},
		{"blank customer", "   ", "x", oneItem, MsgCustomerRequired},
		{"blank contact", "Mario", " \t", oneItem, MsgContactRequired},
		{"no items", "Mario", "x", nil, MsgItemsRequired},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ok, errs := ValidateOrder(c.customer, c.contact, c.items)
			assert.False(t, ok)
			assert.Equal(t, []string{c.want}, errs)
		})
	}
}

func TestValidateOrderReportsAllInOrder(t *testing.T) {
	ok, errs := ValidateOrder("", "", nil)
	assert.False(t, ok)
	assert.Equal(t, []string{MsgCustomerRequired, MsgContactRequired, MsgItemsRequired}, errs)
}

func TestValidateCartItem(t *testing.T) {
	ok, errs := ValidateCartItem("Antipasti", "Insalata russa", 2, 1, menu)
	assert.True(t, ok)
	assert.Empty(t, errs)

	ok, _ = ValidateCartItem("Antipasti", "Insalata russa", 1, 999, menu)
	assert.True(t, ok)
}

func TestValidateCartItemFailures(t *testing.T) {
	cases := []struct {
		name              string
		category, dish    string
		portion, quantity int
		contains          []string
	}{
		{"unknown category", "Dolci", "Tiramisu", 1, 1, []string{"category \"Dolci\""}},
		{"unknown dish", "Antipasti", "Piatto Inesistente", 1, 1, []string{"dish \"Piatto Inesistente\""}},
		{"portion too large", "Antipasti", "Insalata russa", 5, 1, []string{"portion 5"}},
		{"portion zero", "Antipasti", "Insalata russa", 0, 1, []string{"portion 0"}},
		{"zero quantity", "Antipasti", "Insalata russa", 1, 0, []string{"quantity 0"}},
		{"negative quantity", "Antipasti", "Insalata russa", 1, -1, []string{"quantity -1"}},
		{"everything", "Dolci", "Tiramisu", 4, 0, []string{"category", "portion 4", "quantity 0"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ok, errs := ValidateCartItem(c.category, c.dish, c.portion, c.quantity, menu)
			assert.False(t, ok)
			require.Len(t, errs, len(c.contains))
			for i, want := range c.contains {
				assert.Contains(t, errs[i], want)
			}
		})
	}
}

func TestCategoryAndDishErrorsAreExclusive(t *testing.T) {
	_, errs := ValidateCartItem("Dolci", "Insalata russa", 1, 1, menu)
	require.Len(t, errs, 1)
	assert.NotContains(t, errs[0], "dish")
}

func TestAsError(t *testing.T) {
	assert.NoError(t, AsError(ValidateOrder("a", "b", oneItem)))

	err := AsError(ValidateOrder("", "", nil))
	var ve *customerrors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Len(t, ve.Messages, 3)
}

func TestValidateCartItemPortions(t *testing.T) {
	for _, p := range []int{1, 2, 3} {
		ok, errs := ValidateCartItem("Antipasti", "Insalata russa", p, 1, menu)
		assert.True(t, ok, p)
		assert.Empty(t, errs)
	}
	_, errs := ValidateCartItem("Antipasti", "Insalata russa", 4, 1, menu)
	assert.Equal(t, []string{"portion 4 is not valid (must be 1, 2 or 3)"}, errs)
}

func TestValidateCartItemMessageOrder(t *testing.T) {
	_, errs := ValidateCartItem("Antipasti", "Tiramisu", 9, -2, menu)
	assert.Equal(t, []string{
		`dish "Tiramisu" not found in "Antipasti"`,
		"portion 9 is not valid (must be 1, 2 or 3)",
		"quantity -2 is not valid (must be >= 1)",
	}, errs)
}

func TestValidateOrderEmptySliceNeedsItems(t *testing.T) {
	_, errs := ValidateOrder("Mario", "x", []models.CartItem{})
	assert.Equal(t, []string{MsgItemsRequired}, errs)
}
