// Package document defines the catalog document model: an ordered list of
// pages, each holding an ordered list of elements, plus the structural
// mutation operations the editor builds on.
//
// # Render order
//
// A page's element array is the single source of truth for stacking:
// elements earlier in the slice render behind later ones (back-to-front).
// Every element carries an advisory Z index that mirrors its array position;
// any operation that changes order reassigns Z for the whole page so the two
// never diverge. UI surfaces that present layers front-to-back must reverse
// exactly once at the boundary (see [Page.LayerOrder] and
// [Catalog.SetElementOrder]).
//
// # Error model
//
// Mutation operations are total over end-user-reachable input. An unknown
// page index, unknown element id, or unmet precondition is a silent no-op:
// the method returns false and leaves the catalog untouched. These cases
// arise routinely from stale UI callbacks (a drag commit after the element
// was deleted, an upload resolving after an undo) and are not errors.
package document

import (
	"time"

	"github.com/google/uuid"
)

// PageType tags a page for template selection. The tag is descriptive only;
// it does not constrain which elements a page may contain.
type PageType string

// Page types.
const (
	PageCover    PageType = "cover"
	PageInterior PageType = "interior"
	PageIndex    PageType = "index"
	PageClosing  PageType = "closing"
)

// ElementType identifies the visual primitive an element renders as.
type ElementType string

// Element types.
const (
	TypeText         ElementType = "text"
	TypeImage        ElementType = "image"
	TypeShape        ElementType = "shape"
	TypeProductBlock ElementType = "product-block"
	TypeComment      ElementType = "comment"
)

// Role identifies which product field a bound element displays. Roles are
// typed state, replacing detection by element naming conventions or by
// sniffing price-like text content.
type Role string

// Binding roles.
const (
	RoleNone  Role = ""
	RoleName  Role = "name"
	RolePrice Role = "price"
	RoleSKU   Role = "sku"
)

// Default page dimensions in document units (A4 at 96 DPI).
const (
	PageWidth  = 794.0
	PageHeight = 1123.0
)

// Band heights reserved at the top and bottom of every page for the catalog
// header and footer. Template-generated content is laid out inside the
// remaining content area.
const (
	HeaderBand = 60.0
	FooterBand = 40.0
)

// DuplicateOffset is the visual nudge applied to duplicated elements so the
// copy does not sit exactly on top of the original.
const DuplicateOffset = 20.0

// Element is a single positioned visual primitive on a page.
//
// The zero value is not usable: at minimum ID, Type, and a non-zero size
// should be set. NewElement fills sensible defaults.
type Element struct {
	ID   string      `json:"id" bson:"id"`
	Type ElementType `json:"type" bson:"type"`

	// Geometry in document units.
	X        float64 `json:"x" bson:"x"`
	Y        float64 `json:"y" bson:"y"`
	Width    float64 `json:"width" bson:"width"`
	Height   float64 `json:"height" bson:"height"`
	Rotation float64 `json:"rotation,omitempty" bson:"rotation,omitempty"`
	Opacity  float64 `json:"opacity" bson:"opacity"`

	// Z mirrors the element's index in its page array. Advisory only: the
	// array order is authoritative and Z is reassigned by every mutation
	// that changes order.
	Z int `json:"z" bson:"z"`

	// Type-specific style.
	Text         string  `json:"text,omitempty" bson:"text,omitempty"`
	FontFamily   string  `json:"fontFamily,omitempty" bson:"fontFamily,omitempty"`
	FontSize     float64 `json:"fontSize,omitempty" bson:"fontSize,omitempty"`
	FontWeight   string  `json:"fontWeight,omitempty" bson:"fontWeight,omitempty"`
	Color        string  `json:"color,omitempty" bson:"color,omitempty"`
	Fill         string  `json:"fill,omitempty" bson:"fill,omitempty"`
	Stroke       string  `json:"stroke,omitempty" bson:"stroke,omitempty"`
	StrokeWidth  float64 `json:"strokeWidth,omitempty" bson:"strokeWidth,omitempty"`
	Shadow       bool    `json:"shadow,omitempty" bson:"shadow,omitempty"`
	ShapeKind    string  `json:"shapeKind,omitempty" bson:"shapeKind,omitempty"`
	CornerRadius float64 `json:"cornerRadius,omitempty" bson:"cornerRadius,omitempty"`
	ImageRef     string  `json:"imageRef,omitempty" bson:"imageRef,omitempty"`

	// ProductID is a weak reference to a product record; the element does
	// not own the product. Empty means unbound.
	ProductID string `json:"productId,omitempty" bson:"productId,omitempty"`

	// Role names the product field a bound element displays.
	Role Role `json:"role,omitempty" bson:"role,omitempty"`

	// Slot is the 1-based template slot this element occupies, or 0 when
	// the element is free-floating.
	Slot int `json:"slot,omitempty" bson:"slot,omitempty"`

	// GroupID is a shared tag linking grouped elements. Groups have no
	// record of their own; membership is discovered by scanning for the
	// same tag. Empty means ungrouped.
	GroupID string `json:"groupId,omitempty" bson:"groupId,omitempty"`

	// Locked guards geometry: move, nudge, resize, align, and distribute
	// skip locked elements, and RemoveElement refuses them.
	Locked bool `json:"locked,omitempty" bson:"locked,omitempty"`

	// Visible guards rendering only; hidden elements stay selectable.
	Visible bool `json:"visible" bson:"visible"`
}

// NewElement creates an element of the given type with a fresh id, full
// opacity, and visibility on.
func NewElement(t ElementType) Element {
	return Element{
		ID:      uuid.NewString(),
		Type:    t,
		Opacity: 1,
		Visible: true,
	}
}

// Bounds returns the element's axis-aligned edges (left, top, right, bottom).
// Rotation is ignored; alignment and distribution operate on unrotated boxes.
func (e Element) Bounds() (left, top, right, bottom float64) {
	return e.X, e.Y, e.X + e.Width, e.Y + e.Height
}

// Bound reports whether the element carries a product binding.
func (e Element) Bound() bool { return e.ProductID != "" }

// Page is an ordered sequence of elements with a type tag. Number is the
// 1-based display number and is kept sequential by RenumberPages.
type Page struct {
	ID       string    `json:"id" bson:"id"`
	Number   int       `json:"number" bson:"number"`
	Type     PageType  `json:"type" bson:"type"`
	Elements []Element `json:"elements" bson:"elements"`
}

// NewPage creates an empty page of the given type with a fresh id.
// The display number is assigned when the page joins a catalog.
func NewPage(t PageType) Page {
	return Page{ID: uuid.NewString(), Type: t}
}

// IndexOf returns the array index of the element with the given id, or -1.
func (p *Page) IndexOf(id string) int {
	for i := range p.Elements {
		if p.Elements[i].ID == id {
			return i
		}
	}
	return -1
}

// Element returns a pointer to the element with the given id, or nil.
// The pointer is invalidated by any mutation that reorders the page.
func (p *Page) Element(id string) *Element {
	if i := p.IndexOf(id); i >= 0 {
		return &p.Elements[i]
	}
	return nil
}

// GroupMembers returns the indices of all elements sharing the given group
// tag, in array order. An empty tag matches nothing.
func (p *Page) GroupMembers(groupID string) []int {
	if groupID == "" {
		return nil
	}
	var idx []int
	for i := range p.Elements {
		if p.Elements[i].GroupID == groupID {
			idx = append(idx, i)
		}
	}
	return idx
}

// LayerOrder returns element ids front-to-back, the conventional order for
// a layers panel. This is the reverse of the storage array.
func (p *Page) LayerOrder() []string {
	ids := make([]string, len(p.Elements))
	for i := range p.Elements {
		ids[len(p.Elements)-1-i] = p.Elements[i].ID
	}
	return ids
}

// reindex rewrites every element's advisory Z to its array position.
// Called by every mutation that changes order.
func (p *Page) reindex() {
	for i := range p.Elements {
		p.Elements[i].Z = i
	}
}

// Catalog is the whole multi-page document.
type Catalog struct {
	ID               string    `json:"id" bson:"_id"`
	Name             string    `json:"name" bson:"name"`
	Pages            []Page    `json:"pages" bson:"pages"`
	UpdatedAt        time.Time `json:"updatedAt" bson:"updatedAt"`
	Header           string    `json:"header,omitempty" bson:"header,omitempty"`
	Footer           string    `json:"footer,omitempty" bson:"footer,omitempty"`
	Background       string    `json:"background,omitempty" bson:"background,omitempty"`
	SelectedCategory string    `json:"selectedCategory,omitempty" bson:"selectedCategory,omitempty"`
}

// New creates a catalog with a fresh id and a single empty cover page.
// A catalog never has fewer than one page.
func New(name string) *Catalog {
	p := NewPage(PageCover)
	p.Number = 1
	return &Catalog{
		ID:        uuid.NewString(),
		Name:      name,
		Pages:     []Page{p},
		UpdatedAt: time.Now(),
	}
}

// Clone returns a deep copy of the catalog. Clones back one undo entry,
// so element and page slices must never be shared with the original.
func (c *Catalog) Clone() *Catalog {
	out := *c
	out.Pages = make([]Page, len(c.Pages))
	for i := range c.Pages {
		p := c.Pages[i]
		p.Elements = append([]Element(nil), c.Pages[i].Elements...)
		out.Pages[i] = p
	}
	return &out
}

// Page returns a pointer to the page at the given zero-based index, or nil
// when the index is out of range.
func (c *Catalog) Page(i int) *Page {
	if i < 0 || i >= len(c.Pages) {
		return nil
	}
	return &c.Pages[i]
}

// PageCount returns the number of pages.
func (c *Catalog) PageCount() int { return len(c.Pages) }

// FindElement locates an element anywhere in the catalog by id and returns
// its page index and element pointer, or (-1, nil).
func (c *Catalog) FindElement(id string) (pageIdx int, el *Element) {
	for i := range c.Pages {
		if e := c.Pages[i].Element(id); e != nil {
			return i, e
		}
	}
	return -1, nil
}

// ElementIDs returns every element id in the catalog, page by page in
// render order. Useful for uniqueness checks and tests.
func (c *Catalog) ElementIDs() []string {
	var ids []string
	for i := range c.Pages {
		for j := range c.Pages[i].Elements {
			ids = append(ids, c.Pages[i].Elements[j].ID)
		}
	}
	return ids
}

// touch records a content change.
func (c *Catalog) touch() { c.UpdatedAt = time.Now() }
