package menu

import (
	"github.com/shopspring/decimal"

	"orderdesk/models"
)

const DefaultHotButtons = 6

func FormatPrice(price decimal.Decimal, unit models.Unit) string {
	return "€" + price.StringFixed(2) + unit.Label()
}

// HotButton is a one-tap shortcut that adds a dish to the cart.
type HotButton struct {
	Label    string
	Category string
	Dish     string
}

// HotButtons takes the first dish of each non-empty category, in catalog order.
func HotButtons(c *Catalog, limit int) []HotButton {
	if limit <= 0 {
		limit = DefaultHotButtons
	}
	var buttons []HotButton
	for _, name := range c.order {
		items := c.categories[name].Items
		if len(items) == 0 {
			continue
		}
		buttons = append(buttons, HotButton{Label: items[0].Name, Category: name, Dish: items[0].Name})
		if len(buttons) >= limit {
			break
		}
	}
	return buttons
}
