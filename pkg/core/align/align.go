// Package align implements the alignment and distribution commands: pure
// geometric repositioning of a set of page elements.
//
// Alignment has two targets. A single selected element aligns against the
// page bounds (center means the page's horizontal midpoint). Two or more
// elements align against the bounding box of the selection itself, computed
// from the min/max element edges. Locked elements are never repositioned
// but still contribute to the bounding box, so aligning a mixed selection
// moves the unlocked elements into formation around the locked ones.
package align

import "foliopress/pkg/core/document"

// Edge names an alignment target edge or axis midpoint.
type Edge string

// Alignment edges. Left/Center/Right act on the x axis, Top/Middle/Bottom
// on the y axis.
const (
	Left   Edge = "left"
	Center Edge = "center"
	Right  Edge = "right"
	Top    Edge = "top"
	Middle Edge = "middle"
	Bottom Edge = "bottom"
)

// Align repositions the given elements along the requested edge. An empty
// or unresolvable selection and an unknown edge are silent no-ops.
// Returns true if any element moved.
func Align(p *document.Page, ids []string, edge Edge) bool {
	if p == nil {
		return false
	}

	var idx []int
	for _, id := range ids {
		if i := p.IndexOf(id); i >= 0 {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return false
	}

	// Alignment target: page bounds for a lone element, selection bounding
	// box otherwise.
	var minX, minY, maxX, maxY float64
	if len(idx) == 1 {
		minX, minY = 0, 0
		maxX, maxY = document.PageWidth, document.PageHeight
	} else {
		minX, minY, maxX, maxY = bounds(p, idx)
	}

	moved := false
	for _, i := range idx {
		e := &p.Elements[i]
		if e.Locked {
			continue
		}
		x, y := e.X, e.Y
		switch edge {
		case Left:
			e.X = minX
		case Center:
			e.X = minX + (maxX-minX-e.Width)/2
		case Right:
			e.X = maxX - e.Width
		case Top:
			e.Y = minY
		case Middle:
			e.Y = minY + (maxY-minY-e.Height)/2
		case Bottom:
			e.Y = maxY - e.Height
		default:
			return false
		}
		if e.X != x || e.Y != y {
			moved = true
		}
	}
	return moved
}

// bounds returns the min/max edges over the given element indices,
// locked elements included.
func bounds(p *document.Page, idx []int) (minX, minY, maxX, maxY float64) {
	first := p.Elements[idx[0]]
	minX, minY, maxX, maxY = first.Bounds()
	for _, i := range idx[1:] {
		l, t, r, b := p.Elements[i].Bounds()
		minX = min(minX, l)
		minY = min(minY, t)
		maxX = max(maxX, r)
		maxY = max(maxY, b)
	}
	return minX, minY, maxX, maxY
}
