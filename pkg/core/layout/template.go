package layout

import (
	"fmt"

	"foliopress/pkg/core/document"
	"foliopress/pkg/product"
)

// Theme carries the visual defaults a template applies to generated
// elements. Zero-value fields fall back to the built-in defaults.
type Theme struct {
	FontFamily string `json:"fontFamily,omitempty" toml:"font_family"`
	TitleColor string `json:"titleColor,omitempty" toml:"title_color"`
	PriceColor string `json:"priceColor,omitempty" toml:"price_color"`
	SlotFill   string `json:"slotFill,omitempty" toml:"slot_fill"`
	Background string `json:"background,omitempty" toml:"background"`
}

// Built-in theme defaults.
const (
	defaultFont       = "Inter"
	defaultTitleColor = "#1a1a2e"
	defaultPriceColor = "#e94560"
	defaultSlotFill   = "#f4f4f6"
)

func (t Theme) font() string {
	if t.FontFamily != "" {
		return t.FontFamily
	}
	return defaultFont
}

func (t Theme) titleColor() string {
	if t.TitleColor != "" {
		return t.TitleColor
	}
	return defaultTitleColor
}

func (t Theme) priceColor() string {
	if t.PriceColor != "" {
		return t.PriceColor
	}
	return defaultPriceColor
}

func (t Theme) slotFill() string {
	if t.SlotFill != "" {
		return t.SlotFill
	}
	return defaultSlotFill
}

// BuildPages lays out the products across as many interior pages as the
// grid requires: ceil(len(items)/capacity), row-major fill. Every element
// is created with a fresh id, so repeated application never collides with
// earlier output. Zero items still yield one page of empty slots.
func BuildPages(g Grid, theme Theme, items []product.Product) []document.Page {
	per := g.SlotsPerPage()
	if per < 1 {
		return nil
	}

	pages := make([]document.Page, 0, g.PagesNeeded(len(items)))
	for start := 0; ; start += per {
		end := min(start+per, len(items))
		var chunk []product.Product
		if start < len(items) {
			chunk = items[start:end]
		}
		pages = append(pages, buildPage(g, theme, chunk))
		if end >= len(items) {
			break
		}
	}
	return pages
}

// buildPage produces one fully laid out page: decorations first (so they
// render behind everything), then a slot backdrop per grid cell, then the
// bound product card elements for each filled slot.
func buildPage(g Grid, theme Theme, chunk []product.Product) document.Page {
	p := document.NewPage(document.PageInterior)

	for _, d := range g.Decorations {
		el := document.NewElement(document.TypeShape)
		el.ShapeKind = d.ShapeKind
		el.X, el.Y, el.Width, el.Height = d.X, d.Y, d.Width, d.Height
		el.Fill = d.Fill
		if d.Opacity > 0 {
			el.Opacity = d.Opacity
		}
		p.Elements = append(p.Elements, el)
	}

	slots := g.PageSlots()
	for i, r := range slots {
		backdrop := document.NewElement(document.TypeShape)
		backdrop.ShapeKind = "rect"
		backdrop.X, backdrop.Y, backdrop.Width, backdrop.Height = r.X, r.Y, r.Width, r.Height
		backdrop.Fill = theme.slotFill()
		backdrop.CornerRadius = 8
		backdrop.Slot = i + 1
		p.Elements = append(p.Elements, backdrop)
	}

	for i, item := range chunk {
		p.Elements = append(p.Elements, CardElements(slots[i], i+1, theme, item)...)
	}

	for i := range p.Elements {
		p.Elements[i].Z = i
	}
	return p
}

// CardElements composes the elements of one product card inside a slot
// rectangle: image on top of the backdrop, name text, price text. All
// three carry the product binding and the slot reference.
func CardElements(r Rect, slot int, theme Theme, item product.Product) []document.Element {
	pad := 8.0
	imgH := r.Height * 0.55

	img := document.NewElement(document.TypeImage)
	img.X, img.Y = r.X+pad, r.Y+pad
	img.Width, img.Height = r.Width-2*pad, imgH
	img.ImageRef = item.ImageRef
	img.ProductID = item.ID
	img.Slot = slot

	name := document.NewElement(document.TypeText)
	name.X, name.Y = r.X+pad, r.Y+pad+imgH+4
	name.Width, name.Height = r.Width-2*pad, 24
	name.Text = item.Name
	name.FontFamily = theme.font()
	name.FontSize = 16
	name.FontWeight = "600"
	name.Color = theme.titleColor()
	name.ProductID = item.ID
	name.Role = document.RoleName
	name.Slot = slot

	price := document.NewElement(document.TypeText)
	price.X, price.Y = r.X+pad, name.Y+name.Height+2
	price.Width, price.Height = r.Width-2*pad, 20
	price.Text = product.FormatPrice(item.Currency, item.Price)
	price.FontFamily = theme.font()
	price.FontSize = 14
	price.Color = theme.priceColor()
	price.ProductID = item.ID
	price.Role = document.RolePrice
	price.Slot = slot

	return []document.Element{img, name, price}
}

// Apply lays the products out with the grid and writes the result into the
// catalog at pageIdx: the first generated page replaces that page's content
// (the page keeps its id and type), overflow pages are inserted immediately
// after it, and page numbers are rewritten sequentially. Returns the number
// of pages written, or an error for an out-of-range index or degenerate
// grid — the only applicator inputs a stale UI callback cannot produce.
func Apply(c *document.Catalog, pageIdx int, g Grid, theme Theme, items []product.Product) (int, error) {
	if c == nil || pageIdx < 0 || pageIdx >= c.PageCount() {
		return 0, fmt.Errorf("apply template: page index %d out of range", pageIdx)
	}
	built := BuildPages(g, theme, items)
	if len(built) == 0 {
		return 0, fmt.Errorf("apply template: grid %dx%d has no slots", g.Cols, g.Rows)
	}

	target := c.Page(pageIdx)
	target.Elements = built[0].Elements
	if g.Background != "" {
		c.Background = g.Background
	}

	for i, extra := range built[1:] {
		c.InsertPage(pageIdx+1+i, extra)
	}
	c.RenumberPages()
	return len(built), nil
}
