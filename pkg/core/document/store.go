package document

import (
	"slices"

	"github.com/google/uuid"
)

// Update is a partial element update. Nil fields are left untouched.
//
// When X or Y is set on a grouped element, the resulting translation is
// cascaded to every other member of the group; all other fields apply to
// the target element alone.
type Update struct {
	X        *float64
	Y        *float64
	Width    *float64
	Height   *float64
	Rotation *float64
	Opacity  *float64

	Text         *string
	FontFamily   *string
	FontSize     *float64
	FontWeight   *string
	Color        *string
	Fill         *string
	Stroke       *string
	StrokeWidth  *float64
	Shadow       *bool
	ShapeKind    *string
	CornerRadius *float64
	ImageRef     *string

	ProductID *string
	Role      *Role
	Slot      *int
	Visible   *bool
}

// geometric reports whether the update touches geometry, which locked
// elements refuse.
func (u Update) geometric() bool {
	return u.X != nil || u.Y != nil || u.Width != nil || u.Height != nil || u.Rotation != nil
}

// AddElement appends an element to the page, making it the frontmost layer.
// An empty element id is replaced with a fresh one. Returns false when the
// page index is out of range.
func (c *Catalog) AddElement(page int, el Element) bool {
	p := c.Page(page)
	if p == nil {
		return false
	}
	if el.ID == "" {
		el.ID = uuid.NewString()
	}
	el.Z = len(p.Elements)
	p.Elements = append(p.Elements, el)
	c.touch()
	return true
}

// UpdateElement applies a partial update to the element with the given id.
// Geometry fields are refused on locked elements; a positional change on a
// grouped element translates every other group member by the same delta
// (style fields never cascade). Unknown page or id is a no-op.
func (c *Catalog) UpdateElement(page int, id string, u Update) bool {
	p := c.Page(page)
	if p == nil {
		return false
	}
	el := p.Element(id)
	if el == nil {
		return false
	}

	var dx, dy float64
	if !el.Locked {
		if u.X != nil {
			dx = *u.X - el.X
			el.X = *u.X
		}
		if u.Y != nil {
			dy = *u.Y - el.Y
			el.Y = *u.Y
		}
		if u.Width != nil {
			el.Width = *u.Width
		}
		if u.Height != nil {
			el.Height = *u.Height
		}
		if u.Rotation != nil {
			el.Rotation = *u.Rotation
		}
	}

	applyStyle(el, u)

	// Translation cascade to the rest of the group.
	if (dx != 0 || dy != 0) && el.GroupID != "" {
		for _, i := range p.GroupMembers(el.GroupID) {
			m := &p.Elements[i]
			if m.ID == id || m.Locked {
				continue
			}
			m.X += dx
			m.Y += dy
		}
	}

	c.touch()
	return true
}

func applyStyle(el *Element, u Update) {
	if u.Opacity != nil {
		el.Opacity = *u.Opacity
	}
	if u.Text != nil {
		el.Text = *u.Text
	}
	if u.FontFamily != nil {
		el.FontFamily = *u.FontFamily
	}
	if u.FontSize != nil {
		el.FontSize = *u.FontSize
	}
	if u.FontWeight != nil {
		el.FontWeight = *u.FontWeight
	}
	if u.Color != nil {
		el.Color = *u.Color
	}
	if u.Fill != nil {
		el.Fill = *u.Fill
	}
	if u.Stroke != nil {
		el.Stroke = *u.Stroke
	}
	if u.StrokeWidth != nil {
		el.StrokeWidth = *u.StrokeWidth
	}
	if u.Shadow != nil {
		el.Shadow = *u.Shadow
	}
	if u.ShapeKind != nil {
		el.ShapeKind = *u.ShapeKind
	}
	if u.CornerRadius != nil {
		el.CornerRadius = *u.CornerRadius
	}
	if u.ImageRef != nil {
		el.ImageRef = *u.ImageRef
	}
	if u.ProductID != nil {
		el.ProductID = *u.ProductID
	}
	if u.Role != nil {
		el.Role = *u.Role
	}
	if u.Slot != nil {
		el.Slot = *u.Slot
	}
	if u.Visible != nil {
		el.Visible = *u.Visible
	}
}

// RemoveElement deletes the element with the given id. A grouped element
// takes its whole group with it; locked elements block their own removal
// and are skipped by the cascade. Unknown page or id is a no-op.
func (c *Catalog) RemoveElement(page int, id string) bool {
	p := c.Page(page)
	if p == nil {
		return false
	}
	el := p.Element(id)
	if el == nil || el.Locked {
		return false
	}

	doomed := map[string]bool{id: true}
	if el.GroupID != "" {
		for _, i := range p.GroupMembers(el.GroupID) {
			if !p.Elements[i].Locked {
				doomed[p.Elements[i].ID] = true
			}
		}
	}

	p.Elements = slices.DeleteFunc(p.Elements, func(e Element) bool {
		return doomed[e.ID]
	})
	p.reindex()
	c.touch()
	return true
}

// DuplicateElement inserts a copy of the element directly above the
// original, offset by DuplicateOffset. The copy gets a fresh id and never
// inherits group membership or the lock flag.
func (c *Catalog) DuplicateElement(page int, id string) bool {
	p := c.Page(page)
	if p == nil {
		return false
	}
	i := p.IndexOf(id)
	if i < 0 {
		return false
	}

	dup := p.Elements[i]
	dup.ID = uuid.NewString()
	dup.X += DuplicateOffset
	dup.Y += DuplicateOffset
	dup.GroupID = ""
	dup.Locked = false

	p.Elements = slices.Insert(p.Elements, i+1, dup)
	p.reindex()
	c.touch()
	return true
}

// MoveElements translates the given elements by (dx, dy). Grouped ids are
// expanded to their full groups; locked elements are skipped. Returns true
// if at least one element moved.
func (c *Catalog) MoveElements(page int, ids []string, dx, dy float64) bool {
	p := c.Page(page)
	if p == nil || (dx == 0 && dy == 0) {
		return false
	}

	targets := map[string]bool{}
	for _, id := range ids {
		el := p.Element(id)
		if el == nil {
			continue
		}
		targets[id] = true
		for _, i := range p.GroupMembers(el.GroupID) {
			targets[p.Elements[i].ID] = true
		}
	}

	moved := false
	for i := range p.Elements {
		e := &p.Elements[i]
		if !targets[e.ID] || e.Locked {
			continue
		}
		e.X += dx
		e.Y += dy
		moved = true
	}
	if moved {
		c.touch()
	}
	return moved
}

// NudgeElement moves a single element (and its group) by a small step.
func (c *Catalog) NudgeElement(page int, id string, dx, dy float64) bool {
	return c.MoveElements(page, []string{id}, dx, dy)
}

// ToggleLock flips the lock flag on the element with the given id.
func (c *Catalog) ToggleLock(page int, id string) bool {
	p := c.Page(page)
	if p == nil {
		return false
	}
	el := p.Element(id)
	if el == nil {
		return false
	}
	el.Locked = !el.Locked
	c.touch()
	return true
}

// AddPage appends an empty page of the given type and returns its index.
func (c *Catalog) AddPage(t PageType) int {
	p := NewPage(t)
	c.Pages = append(c.Pages, p)
	c.RenumberPages()
	c.touch()
	return len(c.Pages) - 1
}

// InsertPage places a page at the given index, shifting later pages down.
// Out-of-range indices clamp to the ends.
func (c *Catalog) InsertPage(i int, p Page) {
	if i < 0 {
		i = 0
	}
	if i > len(c.Pages) {
		i = len(c.Pages)
	}
	c.Pages = slices.Insert(c.Pages, i, p)
	c.RenumberPages()
	c.touch()
}

// RemovePage deletes the page at the given index. A catalog keeps at least
// one page; removing the last remaining page is a no-op.
func (c *Catalog) RemovePage(i int) bool {
	if i < 0 || i >= len(c.Pages) || len(c.Pages) == 1 {
		return false
	}
	c.Pages = slices.Delete(c.Pages, i, i+1)
	c.RenumberPages()
	c.touch()
	return true
}

// MovePage splices the page at from to position to.
func (c *Catalog) MovePage(from, to int) bool {
	if from < 0 || from >= len(c.Pages) || to < 0 || to >= len(c.Pages) || from == to {
		return false
	}
	p := c.Pages[from]
	c.Pages = slices.Delete(c.Pages, from, from+1)
	c.Pages = slices.Insert(c.Pages, to, p)
	c.RenumberPages()
	c.touch()
	return true
}

// RenumberPages rewrites every page's display number to its 1-based index.
func (c *Catalog) RenumberPages() {
	for i := range c.Pages {
		c.Pages[i].Number = i + 1
	}
}
