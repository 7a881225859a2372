package align

import (
	"sort"

	"foliopress/pkg/core/document"
)

// Axis names a distribution direction.
type Axis string

// Distribution axes.
const (
	Horizontal Axis = "horizontal"
	Vertical   Axis = "vertical"
)

// Distribute spaces the given elements with equal gaps along the axis.
//
// The elements are sorted by their leading edge; the first and last stay
// anchored, and the gap between consecutive elements becomes
//
//	gap = (span − Σ extents) / (n − 1)
//
// where span runs from the first element's leading edge to the last
// element's trailing edge. Locked elements keep their position but still
// participate in the sort and the span, so the free elements space
// themselves around them.
//
// Fewer than three resolvable elements is a no-op.
func Distribute(p *document.Page, ids []string, axis Axis) bool {
	if p == nil || (axis != Horizontal && axis != Vertical) {
		return false
	}

	var idx []int
	for _, id := range ids {
		if i := p.IndexOf(id); i >= 0 {
			idx = append(idx, i)
		}
	}
	if len(idx) < 3 {
		return false
	}

	lead := func(e document.Element) float64 {
		if axis == Horizontal {
			return e.X
		}
		return e.Y
	}
	extent := func(e document.Element) float64 {
		if axis == Horizontal {
			return e.Width
		}
		return e.Height
	}

	sort.SliceStable(idx, func(a, b int) bool {
		return lead(p.Elements[idx[a]]) < lead(p.Elements[idx[b]])
	})

	first := p.Elements[idx[0]]
	last := p.Elements[idx[len(idx)-1]]
	span := lead(last) + extent(last) - lead(first)

	var total float64
	for _, i := range idx {
		total += extent(p.Elements[i])
	}
	gap := (span - total) / float64(len(idx)-1)

	moved := false
	pos := lead(first) + extent(first) + gap
	for _, i := range idx[1 : len(idx)-1] {
		e := &p.Elements[i]
		if !e.Locked {
			if axis == Horizontal && e.X != pos {
				e.X = pos
				moved = true
			} else if axis == Vertical && e.Y != pos {
				e.Y = pos
				moved = true
			}
		}
		pos += extent(*e) + gap
	}
	return moved
}
