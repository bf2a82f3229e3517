package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/models"
)

func item(dish string, portion, qty int) models.CartItem {
	return models.CartItem{Category: "Antipasti", Dish: dish, Portion: portion, Quantity: qty, UnitPrice: decimal.RequireFromString("2.50")}
}

func TestAppendAndItems(t *testing.T) {
	c := New()
	assert.NotNil(t, c.Items())
	assert.Empty(t, c.Items())

	c.Append(item("a", 1, 1), item("b", 2, 3))
	require.Equal(t, 2, c.Len())
	assert.Equal(t, "b", c.At(1).Dish)

	items := c.Items()
	items[0].Dish = "mutated"
	assert.Equal(t, "a", c.At(0).Dish)
}

func TestRemove(t *testing.T) {
	c := New()
	c.Append(item("a", 1, 1), item("b", 1, 1), item("c", 1, 1))

	assert.True(t, c.Remove(1))
	assert.Equal(t, []string{"a", "c"}, dishes(c))

	assert.False(t, c.Remove(2))
	assert.False(t, c.Remove(-1))
	assert.Equal(t, 2, c.Len())
}

func TestClearAndReplace(t *testing.T) {
	c := New()
	c.Append(item("a", 1, 1))
	c.Replace([]models.CartItem{item("x", 1, 1), item("y", 1, 1)})
	assert.Equal(t, []string{"x", "y"}, dishes(c))
	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestTotals(t *testing.T) {
	c := New()
	c.Append(item("a", 2, 1), item("b", 3, 2))
	assert.Equal(t, 3, TotalTrays(c))
	assert.Equal(t, 8, TotalCoveredGuests(c))
	assert.True(t, decimal.RequireFromString("7.50").Equal(Total(c)))
}

func dishes(c *DequeCart) []string {
	var out []string
	for _, it := range c.Items() {
		out = append(out, it.Dish)
	}
	return out
}
