package document

import "slices"

// Direction names a relative z-order move for [Catalog.ReorderElement].
type Direction string

// Reorder directions. Front and back jump to the ends of the stack;
// Forward and Backward swap with the adjacent layer.
const (
	ToFront  Direction = "front"
	ToBack   Direction = "back"
	Forward  Direction = "forward"
	Backward Direction = "backward"
)

// ReorderElement splices the element to its new array position and
// reassigns every element's advisory z to its array index. Moving the
// frontmost element forward (or the backmost backward) is a no-op.
func (c *Catalog) ReorderElement(page int, id string, dir Direction) bool {
	p := c.Page(page)
	if p == nil {
		return false
	}
	i := p.IndexOf(id)
	if i < 0 {
		return false
	}

	j := i
	switch dir {
	case ToFront:
		j = len(p.Elements) - 1
	case ToBack:
		j = 0
	case Forward:
		j = i + 1
	case Backward:
		j = i - 1
	default:
		return false
	}
	if j == i || j < 0 || j >= len(p.Elements) {
		return false
	}

	el := p.Elements[i]
	p.Elements = slices.Delete(p.Elements, i, i+1)
	p.Elements = slices.Insert(p.Elements, j, el)
	p.reindex()
	c.touch()
	return true
}

// SetElementOrder replaces the page's stacking order. The input is the
// front-to-back ordering a layers panel presents, so it is reversed exactly
// once before being applied to the back-to-front storage array. The id list
// must be a permutation of the page's elements; anything else is a no-op.
func (c *Catalog) SetElementOrder(page int, orderedIDs []string) bool {
	p := c.Page(page)
	if p == nil || len(orderedIDs) != len(p.Elements) {
		return false
	}

	next := make([]Element, 0, len(p.Elements))
	seen := make(map[string]bool, len(orderedIDs))
	for i := len(orderedIDs) - 1; i >= 0; i-- {
		id := orderedIDs[i]
		if seen[id] {
			return false
		}
		seen[id] = true
		j := p.IndexOf(id)
		if j < 0 {
			return false
		}
		next = append(next, p.Elements[j])
	}

	p.Elements = next
	p.reindex()
	c.touch()
	return true
}
