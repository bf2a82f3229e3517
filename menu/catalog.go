package menu

import (
	"fmt"
	"strings"

	"orderdesk/customerrors"
	"orderdesk/models"
)

// Catalog is the read-only holiday menu. Category order is the configuration
// order and is what staff see in every listing.
type Catalog struct {
	order      []string
	categories map[string]models.Category
	dishes     map[string]map[string]models.MenuItem
}

func NewCatalog(categories []models.Category) (*Catalog, error) {
	c := &Catalog{
		categories: make(map[string]models.Category, len(categories)),
		dishes:     make(map[string]map[string]models.MenuItem, len(categories)),
	}
	for _, cat := range categories {
		if strings.TrimSpace(cat.Name) == "" {
			return nil, fmt.Errorf("category with empty name")
		}
		if _, dup := c.categories[cat.Name]; dup {
			return nil, fmt.Errorf("duplicate category %q", cat.Name)
		}
		byName := make(map[string]models.MenuItem, len(cat.Items))
		items := make([]models.MenuItem, 0, len(cat.Items))
		for _, it := range cat.Items {
			if _, dup := byName[it.Name]; dup {
				return nil, fmt.Errorf("duplicate dish %q in category %q", it.Name, cat.Name)
			}
			if it.Price.IsNegative() {
				return nil, fmt.Errorf("dish %q: negative price %s", it.Name, it.Price)
			}
			if !it.Unit.Valid() {
				return nil, fmt.Errorf("dish %q: unknown unit %q", it.Name, it.Unit)
			}
			byName[it.Name] = it
			items = append(items, it)
		}
		cat.Items = items
		c.order = append(c.order, cat.Name)
		c.categories[cat.Name] = cat
		c.dishes[cat.Name] = byName
	}
	return c, nil
}

func (c *Catalog) ListCategories() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) ListItems(category string) ([]models.MenuItem, error) {
	cat, ok := c.categories[category]
	if !ok {
		return nil, customerrors.NewNotFound("category").Wrap(map[string]interface{}{"category": category})
	}
	out := make([]models.MenuItem, len(cat.Items))
	copy(out, cat.Items)
	return out, nil
}

func (c *Catalog) FindItem(category, dish string) (models.MenuItem, error) {
	byName, ok := c.dishes[category]
	if !ok {
		return models.MenuItem{}, customerrors.NewNotFound("category").Wrap(map[string]interface{}{"category": category})
	}
	it, ok := byName[dish]
	if !ok {
		return models.MenuItem{}, customerrors.NewNotFound("dish").Wrap(map[string]interface{}{"category": category, "dish": dish})
	}
	return it, nil
}

// CategoryNote returns the preparation note, empty for unknown categories.
func (c *Catalog) CategoryNote(category string) string {
	return c.categories[category].Note
}

func (c *Catalog) HasCategory(category string) bool {
	_, ok := c.categories[category]
	return ok
}

func (c *Catalog) HasDish(category, dish string) bool {
	_, ok := c.dishes[category][dish]
	return ok
}

func (c *Catalog) Len() int {
	n := 0
	for _, byName := range c.dishes {
		n += len(byName)
	}
	return n
}
