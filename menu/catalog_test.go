package menu

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/customerrors"
	"orderdesk/models"
)

func sampleCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog([]models.Category{
		{Name: "Antipasti", Note: "Serve cold.", Items: []models.MenuItem{
			{Name: "Insalata russa", Price: decimal.RequireFromString("3.90"), Unit: models.PerHundredGrams},
			{Name: "Brioche spada", Price: decimal.RequireFromString("4.00"), Unit: models.PerPiece},
		}},
		{Name: "Vuota"},
		{Name: "Crudi", Items: []models.MenuItem{
			{Name: "Tartare tonno", Price: decimal.RequireFromString("16"), Unit: models.PerPortion},
		}},
	})
	require.NoError(t, err)
	return c
}

func TestListCategoriesKeepsOrder(t *testing.T) {
	c := sampleCatalog(t)
	assert.Equal(t, []string{"Antipasti", "Vuota", "Crudi"}, c.ListCategories())
}

func TestListItems(t *testing.T) {
	c := sampleCatalog(t)
	items, err := c.ListItems("Antipasti")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Insalata russa", items[0].Name)

	items[0].Name = "mutated"
	again, _ := c.ListItems("Antipasti")
	assert.Equal(t, "Insalata russa", again[0].Name)

	_, err = c.ListItems("Dolci")
	assert.True(t, errors.Is(err, customerrors.ErrNotFound))
}

func TestFindItem(t *testing.T) {
	c := sampleCatalog(t)
	it, err := c.FindItem("Crudi", "Tartare tonno")
	require.NoError(t, err)
	assert.Equal(t, models.PerPortion, it.Unit)

	_, err = c.FindItem("Dolci", "Tiramisu")
	assert.ErrorIs(t, err, customerrors.ErrNotFound)
	assert.Contains(t, err.Error(), "category")

	_, err = c.FindItem("Antipasti", "Tiramisu")
	assert.ErrorIs(t, err, customerrors.ErrNotFound)
	assert.Contains(t, err.Error(), "dish=Tiramisu")
}

func TestCategoryNote(t *testing.T) {
	c := sampleCatalog(t)
	assert.Equal(t, "Serve cold.", c.CategoryNote("Antipasti"))
	assert.Empty(t, c.CategoryNote("Crudi"))
	assert.Empty(t, c.CategoryNote("Dolci"))
}

func TestNewCatalogRejectsBadMenus(t *testing.T) {
	price := decimal.RequireFromString("1")
	cases := map[string][]models.Category{
		"duplicate category": {{Name: "A"}, {Name: "A"}},
		"duplicate dish": {{Name: "A", Items: []models.MenuItem{
			{Name: "x", Price: price, Unit: models.PerDish}, {Name: "x", Price: price, Unit: models.PerDish},
		}}},
		"negative price": {{Name: "A", Items: []models.MenuItem{
			{Name: "x", Price: decimal.RequireFromString("-1"), Unit: models.PerDish},
		}}},
		"unknown unit": {{Name: "A", Items: []models.MenuItem{{Name: "x", Price: price, Unit: "etto"}}}},
		"empty name":   {{Name: "  "}},
	}
	for name, cats := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := NewCatalog(cats)
			assert.Error(t, err)
		})
	}
}

func TestDefaultMenu(t *testing.T) {
	c := Default()
	assert.Equal(t, []string{"Antipasti", "Sughi", "Primi", "Secondi", "Pronti a Cuocere", "Crudi"}, c.ListCategories())
	assert.Equal(t, 32, c.Len())
	it, err := c.FindItem("Crudi", "Tartare tonno 120gr")
	require.NoError(t, err)
	assert.Equal(t, "16", it.Price.String())
	assert.NotEmpty(t, c.CategoryNote("Primi"))
}

func TestParseRejectsBadPrice(t *testing.T) {
	_, err := Parse([]byte("categories:\n  - name: A\n    items:\n      - {name: x, price: abc, unit: per-dish}\n"))
	assert.Error(t, err)
}
