// Package catalog provides the fixed in-memory product catalog.
// The catalog is defined at build time and never mutated.
package catalog

import (
	"fmt"

	"github.com/sapiens-sapiens/storefront/internal/core/domain"
	"github.com/sapiens-sapiens/storefront/internal/core/port"
)

var _ port.ProductCatalog = Catalog{}

type Catalog struct {
	products []domain.Product
	index    map[string]domain.Product
	labels   map[string]string
	catOrder []string
}

func New() Catalog {
	index := make(map[string]domain.Product, len(products))
	for _, p := range products {
		index[p.ProductID] = p
	}

	labels := make(map[string]string, len(categories))
	catOrder := make([]string, 0, len(categories))
	for _, c := range categories {
		labels[c.Key] = c.Label
		catOrder = append(catOrder, c.Key)
	}

	return Catalog{
		products: products,
		index:    index,
		labels:   labels,
		catOrder: catOrder,
	}
}

func (c Catalog) Lookup(id string) (domain.Product, error) {
	const op = "Catalog.Lookup"

	p, ok := c.index[id]
	if !ok {
		return domain.Product{}, fmt.Errorf(
			"%s: %q: %w", op, id, domain.ErrProductNotFound,
		)
	}
	return p, nil
}

// All returns the products in catalog order.
func (c Catalog) All() []domain.Product {
	ps := make([]domain.Product, len(c.products))
	copy(ps, c.products)
	return ps
}

// Categories returns the category table in display order,
// the wildcard first.
func (c Catalog) Categories() []domain.Category {
	cs := make([]domain.Category, 0, len(c.catOrder))
	for _, key := range c.catOrder {
		cs = append(cs, domain.Category{Key: key, Label: c.labels[key]})
	}
	return cs
}

// HasCategory reports whether key is a recognized category,
// the wildcard included.
func (c Catalog) HasCategory(key string) bool {
	_, ok := c.labels[key]
	return ok
}
