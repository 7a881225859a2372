package layout

import (
	"testing"

	"foliopress/pkg/core/document"
	"foliopress/pkg/product"
)

func items(n int) []product.Product {
	out := make([]product.Product, n)
	for i := range out {
		out[i] = product.Product{
			ID:    "p" + string(rune('0'+i)),
			Name:  "Item " + string(rune('A'+i)),
			Price: float64(i) + 0.5,
		}
	}
	return out
}

func TestBuildPagesPaginates(t *testing.T) {
	g := Grid{Cols: 2, Rows: 2, Padding: 24, Spacing: 16}
	pages := BuildPages(g, Theme{}, items(10))

	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}

	// Full pages: 4 backdrops + 4 cards of 3 elements.
	if got := len(pages[0].Elements); got != 4+4*3 {
		t.Errorf("page 0 has %d elements, want 16", got)
	}
	// Last page holds the remaining 2 items.
	if got := boundProducts(&pages[2]); got != 2 {
		t.Errorf("last page binds %d products, want 2", got)
	}
	if got := len(pages[2].Elements); got != 4+2*3 {
		t.Errorf("last page has %d elements, want 10", got)
	}
}

func TestBuildPagesZeroItems(t *testing.T) {
	g := Grid{Cols: 3, Rows: 3, Padding: 20, Spacing: 12}
	pages := BuildPages(g, Theme{}, nil)

	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1 empty page", len(pages))
	}
	if got := len(pages[0].Elements); got != 9 {
		t.Errorf("empty page has %d elements, want 9 slot backdrops", got)
	}
}

func TestBuildPagesFreshIDs(t *testing.T) {
	g := Grid{Cols: 2, Rows: 1, Padding: 10, Spacing: 10}

	a := BuildPages(g, Theme{}, items(2))
	b := BuildPages(g, Theme{}, items(2))

	seen := map[string]bool{}
	for _, p := range append(a, b...) {
		for _, e := range p.Elements {
			if seen[e.ID] {
				t.Fatalf("id %q reused across applications", e.ID)
			}
			seen[e.ID] = true
		}
	}
}

func TestBuildPageElementOrderAndZ(t *testing.T) {
	g := Grid{
		Cols: 1, Rows: 1, Padding: 10,
		Decorations: []Decoration{{ShapeKind: "rect", Width: 100, Height: 50, Fill: "#111"}},
	}
	pages := BuildPages(g, Theme{}, items(1))
	p := pages[0]

	// Decoration first (backmost), then backdrop, then the card.
	if p.Elements[0].ShapeKind != "rect" || p.Elements[0].Fill != "#111" {
		t.Error("decoration should be the backmost element")
	}
	if p.Elements[1].Slot != 1 || p.Elements[1].Bound() {
		t.Error("second element should be the unbound slot backdrop")
	}
	for i, e := range p.Elements {
		if e.Z != i {
			t.Errorf("Z[%d] = %d, want %d", i, e.Z, i)
		}
	}
}

func TestCardElements(t *testing.T) {
	r := Rect{X: 100, Y: 200, Width: 200, Height: 300}
	item := product.Product{ID: "p1", Name: "Mug", Price: 12.5, ImageRef: "mug.png"}

	card := CardElements(r, 3, Theme{}, item)
	if len(card) != 3 {
		t.Fatalf("got %d elements, want image, name, price", len(card))
	}

	img, name, price := card[0], card[1], card[2]
	if img.Type != document.TypeImage || img.ImageRef != "mug.png" {
		t.Error("first card element should be the product image")
	}
	if name.Role != document.RoleName || name.Text != "Mug" {
		t.Errorf("name element = %q role %q", name.Text, name.Role)
	}
	if price.Role != document.RolePrice || price.Text != "€12.50" {
		t.Errorf("price element = %q, want €12.50", price.Text)
	}
	for _, e := range card {
		if e.ProductID != "p1" || e.Slot != 3 {
			t.Errorf("card element missing binding: product %q slot %d", e.ProductID, e.Slot)
		}
	}
}

func TestApplyReplacesPageAndInsertsOverflow(t *testing.T) {
	c := document.New("test")
	keep := document.NewElement(document.TypeText)
	c.AddElement(0, keep)
	c.AddPage(document.PageClosing)

	g := Grid{Cols: 2, Rows: 2, Padding: 24, Spacing: 16}
	n, err := Apply(c, 0, g, Theme{}, items(10))
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if n != 3 {
		t.Errorf("Apply() = %d pages, want 3", n)
	}

	// Cover replaced in place, two pages inserted, closing page pushed last.
	if c.PageCount() != 4 {
		t.Fatalf("PageCount() = %d, want 4", c.PageCount())
	}
	if c.Pages[0].Type != document.PageCover {
		t.Error("target page should keep its type")
	}
	if c.Pages[0].IndexOf(keep.ID) >= 0 {
		t.Error("target page content should be replaced")
	}
	if c.Pages[3].Type != document.PageClosing {
		t.Errorf("closing page ended up at %q", c.Pages[3].Type)
	}
	for i, p := range c.Pages {
		if p.Number != i+1 {
			t.Errorf("page %d numbered %d", i, p.Number)
		}
	}
}

func TestApplyErrors(t *testing.T) {
	c := document.New("test")
	g := Grid{Cols: 2, Rows: 2}

	if _, err := Apply(c, 5, g, Theme{}, nil); err == nil {
		t.Error("out-of-range page index should error")
	}
	if _, err := Apply(c, -1, g, Theme{}, nil); err == nil {
		t.Error("negative page index should error")
	}
	if _, err := Apply(c, 0, Grid{}, Theme{}, nil); err == nil {
		t.Error("degenerate grid should error")
	}
}

func boundProducts(p *document.Page) int {
	seen := map[string]bool{}
	for _, e := range p.Elements {
		if e.Bound() {
			seen[e.ProductID] = true
		}
	}
	return len(seen)
}
