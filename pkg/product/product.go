// Package product defines the product records that catalog elements bind
// to, and a small in-memory collection the generator and synchronizer
// consume. Persistence of products belongs to the surrounding application;
// the engine holds only weak references by product id.
package product

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Product is a single catalog item.
type Product struct {
	ID          string  `json:"id" toml:"id"`
	Name        string  `json:"name" toml:"name"`
	SKU         string  `json:"sku,omitempty" toml:"sku"`
	Price       float64 `json:"price" toml:"price"`
	Currency    string  `json:"currency" toml:"currency"`
	Description string  `json:"description,omitempty" toml:"description"`
	ImageRef    string  `json:"imageRef,omitempty" toml:"image"`
	CategoryID  string  `json:"categoryId,omitempty" toml:"category"`
}

// FormatPrice renders a price for display: the currency symbol directly
// followed by the amount with two decimals (e.g. "€12.50").
func FormatPrice(currency string, price float64) string {
	if currency == "" {
		currency = "€"
	}
	return fmt.Sprintf("%s%.2f", currency, price)
}

// DisplayPrice returns the product's formatted price.
func (p Product) DisplayPrice() string {
	return FormatPrice(p.Currency, p.Price)
}

// Collection is an in-memory product set keyed by id. The zero value is
// not usable; use NewCollection.
type Collection struct {
	byID map[string]Product
}

// NewCollection creates a collection from the given products. Products
// without an id are assigned fresh ones.
func NewCollection(products ...Product) *Collection {
	c := &Collection{byID: make(map[string]Product, len(products))}
	for _, p := range products {
		c.Put(p)
	}
	return c
}

// Put inserts or replaces a product, minting an id when missing, and
// returns the stored record.
func (c *Collection) Put(p Product) Product {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	c.byID[p.ID] = p
	return p
}

// Get returns the product with the given id.
func (c *Collection) Get(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Delete removes a product by id.
func (c *Collection) Delete(id string) {
	delete(c.byID, id)
}

// Len returns the number of products.
func (c *Collection) Len() int { return len(c.byID) }

// List returns all products sorted by name for deterministic layout input.
func (c *Collection) List() []Product {
	out := make([]Product, 0, len(c.byID))
	for _, p := range c.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name == out[j].Name {
			return out[i].ID < out[j].ID
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ByCategory returns the products in the given category, sorted by name.
func (c *Collection) ByCategory(categoryID string) []Product {
	var out []Product
	for _, p := range c.List() {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}
