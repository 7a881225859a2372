package layout

import (
	"foliopress/pkg/core/document"
	"foliopress/pkg/product"
)

// Default geometry for items placed when no free slot exists.
const (
	freeFloatX      = 80.0
	freeFloatY      = 120.0
	freeFloatWidth  = 220.0
	freeFloatHeight = 180.0
)

// FreeSlot scans the page for the lowest slot number that has a backdrop
// placeholder but no bound occupant. A slot counts as occupied when any
// element carries both that slot reference and a product binding. Returns
// (slot, rect, true), the rect taken from the placeholder's geometry, or
// ok=false when every slot is taken or the page has none.
func FreeSlot(p *document.Page) (int, Rect, bool) {
	if p == nil {
		return 0, Rect{}, false
	}

	placeholders := map[int]Rect{}
	occupied := map[int]bool{}
	for i := range p.Elements {
		e := &p.Elements[i]
		if e.Slot == 0 {
			continue
		}
		if e.Bound() {
			occupied[e.Slot] = true
		} else if _, seen := placeholders[e.Slot]; !seen {
			placeholders[e.Slot] = Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
		}
	}

	best := 0
	for slot := range placeholders {
		if occupied[slot] {
			continue
		}
		if best == 0 || slot < best {
			best = slot
		}
	}
	if best == 0 {
		return 0, Rect{}, false
	}
	return best, placeholders[best], true
}

// PlaceProduct adds a product to the page: into the first free slot when
// one exists, otherwise as a free-floating card at the default position.
// Returns false when the page index is out of range.
func PlaceProduct(c *document.Catalog, pageIdx int, theme Theme, item product.Product) bool {
	p := c.Page(pageIdx)
	if p == nil {
		return false
	}

	slot, r, ok := FreeSlot(p)
	if !ok {
		slot = 0
		r = Rect{X: freeFloatX, Y: freeFloatY, Width: freeFloatWidth, Height: freeFloatHeight}
	}

	for _, el := range CardElements(r, slot, theme, item) {
		c.AddElement(pageIdx, el)
	}
	return true
}
