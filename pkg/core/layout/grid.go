// Package layout generates slot-grid page layouts from grid templates and
// binds sequences of catalog products into them, paginating overflow onto
// additional pages.
//
// The generator is side-effect-free: given a template and a content area it
// produces slot rectangles; given a product sequence it produces fully
// formed pages. Applying a template to a live catalog is the only mutating
// entry point ([Apply]) and is built on the pure pieces.
package layout

import "foliopress/pkg/core/document"

// Rect is an axis-aligned rectangle in document units.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Decoration is a template-supplied backdrop shape, emitted behind all
// generated slot content.
type Decoration struct {
	ShapeKind string  `json:"shape" toml:"shape"`
	X         float64 `json:"x" toml:"x"`
	Y         float64 `json:"y" toml:"y"`
	Width     float64 `json:"width" toml:"width"`
	Height    float64 `json:"height" toml:"height"`
	Fill      string  `json:"fill" toml:"fill"`
	Opacity   float64 `json:"opacity" toml:"opacity"`
}

// Grid is a pure slot-grid specification. Slots are laid out left-to-right,
// top-to-bottom inside the page content area (the page minus the header and
// footer bands), inset by Padding, with Spacing between neighbours.
type Grid struct {
	Cols        int          `json:"cols" toml:"cols"`
	Rows        int          `json:"rows" toml:"rows"`
	Padding     float64      `json:"padding" toml:"padding"`
	Spacing     float64      `json:"spacing" toml:"spacing"`
	Arrangement string       `json:"arrangement,omitempty" toml:"arrangement"`
	Background  string       `json:"background,omitempty" toml:"background"`
	Decorations []Decoration `json:"decorations,omitempty" toml:"decorations"`
}

// SlotsPerPage returns the grid's capacity.
func (g Grid) SlotsPerPage() int { return g.Cols * g.Rows }

// Slots computes the slot rectangles for a content area of the given size.
// Coordinates are relative to the content-area origin. Each slot measures
//
//	((cw − 2·padding − (cols−1)·spacing) / cols) ×
//	((ch − 2·padding − (rows−1)·spacing) / rows)
//
// Returns nil for a degenerate grid (cols or rows < 1).
func (g Grid) Slots(cw, ch float64) []Rect {
	if g.Cols < 1 || g.Rows < 1 {
		return nil
	}

	w := (cw - 2*g.Padding - float64(g.Cols-1)*g.Spacing) / float64(g.Cols)
	h := (ch - 2*g.Padding - float64(g.Rows-1)*g.Spacing) / float64(g.Rows)

	slots := make([]Rect, 0, g.Cols*g.Rows)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			slots = append(slots, Rect{
				X:      g.Padding + float64(col)*(w+g.Spacing),
				Y:      g.Padding + float64(row)*(h+g.Spacing),
				Width:  w,
				Height: h,
			})
		}
	}
	return slots
}

// PageSlots computes slot rectangles in page coordinates for the default
// page size, offset below the header band.
func (g Grid) PageSlots() []Rect {
	cw := document.PageWidth
	ch := document.PageHeight - document.HeaderBand - document.FooterBand
	slots := g.Slots(cw, ch)
	for i := range slots {
		slots[i].Y += document.HeaderBand
	}
	return slots
}

// PagesNeeded returns how many template pages a sequence of n items fills:
// ceil(n / capacity). Zero items still produce one (empty) page.
func (g Grid) PagesNeeded(n int) int {
	per := g.SlotsPerPage()
	if per < 1 {
		return 0
	}
	if n <= 0 {
		return 1
	}
	return (n + per - 1) / per
}
