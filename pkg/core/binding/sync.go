// Package binding propagates product-data edits into the elements bound to
// them. It is the write-side of the weak productId reference: when a
// product's name, price, or image changes, every element displaying that
// field is refreshed.
//
// # Isolation rule
//
// Pages holding two or more product-bound elements are skipped entirely.
// Multi-product layouts (anything a slot template generated, or a page an
// editor hand-tuned with several cards) are treated as editorially owned:
// automatic sync must not clobber per-page overrides. Only pages with a
// single bound element — a lone hero card — track their product
// automatically. The threshold is counted over typed bindings, not naming
// conventions.
package binding

import (
	"foliopress/pkg/core/document"
	"foliopress/pkg/product"
)

// SyncProduct pushes the product's current name, price, and image into
// every bound element on pages that are not isolated (see the package
// doc). Returns the number of elements updated.
func SyncProduct(c *document.Catalog, p product.Product) int {
	if c == nil || p.ID == "" {
		return 0
	}

	updated := 0
	for pi := range c.Pages {
		page := &c.Pages[pi]
		if boundCount(page) >= 2 {
			continue
		}
		for ei := range page.Elements {
			el := &page.Elements[ei]
			if el.ProductID != p.ID {
				continue
			}
			if syncElement(el, p) {
				updated++
			}
		}
	}
	return updated
}

// SyncAll refreshes every bound element in the catalog from the product
// collection, subject to the same page isolation. Elements bound to
// products that no longer exist are left untouched (the binding is weak;
// a dangling reference is not an error).
func SyncAll(c *document.Catalog, products *product.Collection) int {
	if c == nil || products == nil {
		return 0
	}

	updated := 0
	for pi := range c.Pages {
		page := &c.Pages[pi]
		if boundCount(page) >= 2 {
			continue
		}
		for ei := range page.Elements {
			el := &page.Elements[ei]
			if !el.Bound() {
				continue
			}
			p, ok := products.Get(el.ProductID)
			if !ok {
				continue
			}
			if syncElement(el, p) {
				updated++
			}
		}
	}
	return updated
}

// syncElement writes the product field the element displays. Text elements
// follow their role (price formatted as currency + two decimals, otherwise
// the name); image elements take the image reference; product blocks take
// name and image together.
func syncElement(el *document.Element, p product.Product) bool {
	switch {
	case el.Type == document.TypeText && el.Role == document.RolePrice:
		el.Text = p.DisplayPrice()
	case el.Type == document.TypeText && el.Role == document.RoleSKU:
		el.Text = p.SKU
	case el.Type == document.TypeText:
		el.Text = p.Name
	case el.Type == document.TypeImage:
		el.ImageRef = p.ImageRef
	case el.Type == document.TypeProductBlock:
		el.Text = p.Name
		el.ImageRef = p.ImageRef
	default:
		return false
	}
	return true
}

// boundCount counts the elements on the page that carry a product binding.
func boundCount(p *document.Page) int {
	n := 0
	for i := range p.Elements {
		if p.Elements[i].Bound() {
			n++
		}
	}
	return n
}
