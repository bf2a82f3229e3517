package menu

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"orderdesk/models"
)

//go:embed default_menu.yaml
var defaultMenu []byte

type fileItem struct {
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Unit        string `yaml:"unit"`
	Description string `yaml:"description"`
}

type fileCategory struct {
	Name  string     `yaml:"name"`
	Note  string     `yaml:"note"`
	Items []fileItem `yaml:"items"`
}

type file struct {
	Categories []fileCategory `yaml:"categories"`
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("cant unmarshall menu: %w", err)
	}
	categories := make([]models.Category, 0, len(f.Categories))
	for _, fc := range f.Categories {
		cat := models.Category{Name: fc.Name, Note: fc.Note}
		for _, fi := range fc.Items {
			price, err := decimal.NewFromString(fi.Price)
			if err != nil {
				return nil, fmt.Errorf("dish %q: bad price %q: %w", fi.Name, fi.Price, err)
			}
			cat.Items = append(cat.Items, models.MenuItem{
				Name:        fi.Name,
				Price:       price,
				Unit:        models.Unit(fi.Unit),
				Description: fi.Description,
			})
		}
		categories = append(categories, cat)
	}
	return NewCatalog(categories)
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Default is the built-in 2025 holiday menu.
func Default() *Catalog {
	c, err := Parse(defaultMenu)
	if err != nil {
		panic(err)
	}
	return c
}
