package align

import (
	"testing"

	"foliopress/pkg/core/document"
)

func el(id string, x, y, w, h float64) document.Element {
	e := document.NewElement(document.TypeShape)
	e.ID = id
	e.X, e.Y, e.Width, e.Height = x, y, w, h
	return e
}

func page(elements ...document.Element) *document.Page {
	p := document.NewPage(document.PageInterior)
	p.Elements = elements
	return &p
}

func TestAlignSingleElementUsesPageBounds(t *testing.T) {
	tests := []struct {
		name  string
		edge  Edge
		wantX float64
		wantY float64
	}{
		{"left", Left, 0, 50},
		{"center", Center, (document.PageWidth - 100) / 2, 50}, // 347 on a 794 page
		{"right", Right, document.PageWidth - 100, 50},
		{"top", Top, 30, 0},
		{"middle", Middle, 30, (document.PageHeight - 40) / 2},
		{"bottom", Bottom, 30, document.PageHeight - 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := page(el("a", 30, 50, 100, 40))

			if !Align(p, []string{"a"}, tt.edge) {
				t.Fatal("Align should report movement")
			}
			e := p.Element("a")
			if e.X != tt.wantX || e.Y != tt.wantY {
				t.Errorf("element at (%v, %v), want (%v, %v)", e.X, e.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestAlignMultiUsesSelectionBounds(t *testing.T) {
	p := page(
		el("a", 10, 10, 50, 20),
		el("b", 100, 40, 30, 20),
		el("c", 200, 80, 80, 20),
	)

	if !Align(p, []string{"a", "b", "c"}, Left) {
		t.Fatal("Align should report movement")
	}

	// Everything lines up on the selection's min x.
	for _, id := range []string{"a", "b", "c"} {
		if e := p.Element(id); e.X != 10 {
			t.Errorf("%s.X = %v, want 10", id, e.X)
		}
	}
}

func TestAlignLockedAnchorsTheBox(t *testing.T) {
	locked := el("l", 300, 0, 50, 20)
	locked.Locked = true
	p := page(el("a", 10, 40, 50, 20), locked)

	Align(p, []string{"a", "l"}, Right)

	// The locked element contributes its right edge (350) but stays put;
	// only the free element moves.
	if e := p.Element("l"); e.X != 300 {
		t.Errorf("locked element moved to X=%v", e.X)
	}
	if e := p.Element("a"); e.X != 300 {
		t.Errorf("a.X = %v, want 300 (right edge 350 minus width)", e.X)
	}
}

func TestAlignNoops(t *testing.T) {
	p := page(el("a", 10, 10, 50, 20))

	if Align(nil, []string{"a"}, Left) {
		t.Error("nil page should be a no-op")
	}
	if Align(p, nil, Left) {
		t.Error("empty selection should be a no-op")
	}
	if Align(p, []string{"missing"}, Left) {
		t.Error("unresolvable selection should be a no-op")
	}
	if Align(p, []string{"a"}, Edge("diagonal")) {
		t.Error("unknown edge should be a no-op")
	}
}

func TestDistributeEqualGaps(t *testing.T) {
	// Uneven gaps: 0-20, 30-60, 200-250. Span 0..250, extents 100,
	// so the gap becomes (250 - 100) / 2 = 75.
	p := page(
		el("a", 0, 0, 20, 10),
		el("b", 30, 0, 30, 10),
		el("c", 200, 0, 50, 10),
	)

	if !Distribute(p, []string{"a", "b", "c"}, Horizontal) {
		t.Fatal("Distribute should report movement")
	}

	if e := p.Element("a"); e.X != 0 {
		t.Errorf("first element moved to X=%v, want anchored at 0", e.X)
	}
	if e := p.Element("b"); e.X != 95 { // 0+20+75
		t.Errorf("b.X = %v, want 95", e.X)
	}
	if e := p.Element("c"); e.X != 200 {
		t.Errorf("last element moved to X=%v, want anchored at 200", e.X)
	}
}

func TestDistributeVertical(t *testing.T) {
	p := page(
		el("a", 0, 0, 10, 10),
		el("b", 0, 15, 10, 10),
		el("c", 0, 90, 10, 10),
	)

	Distribute(p, []string{"a", "b", "c"}, Vertical)

	// Span 0..100, extents 30, gap (100-30)/2 = 35.
	if e := p.Element("b"); e.Y != 45 {
		t.Errorf("b.Y = %v, want 45", e.Y)
	}
}

func TestDistributeNeedsThree(t *testing.T) {
	p := page(el("a", 0, 0, 10, 10), el("b", 50, 0, 10, 10))

	if Distribute(p, []string{"a", "b"}, Horizontal) {
		t.Error("two elements should be a no-op")
	}
	if Distribute(p, []string{"a", "b", "missing"}, Horizontal) {
		t.Error("two resolvable elements should be a no-op")
	}
}

func TestDistributeLockedKeepsPositionButCounts(t *testing.T) {
	locked := el("b", 30, 0, 30, 10)
	locked.Locked = true
	p := page(
		el("a", 0, 0, 20, 10),
		locked,
		el("c", 200, 0, 50, 10),
	)

	Distribute(p, []string{"a", "b", "c"}, Horizontal)

	// The locked middle element stays, but it still occupies its place in
	// the sequence.
	if e := p.Element("b"); e.X != 30 {
		t.Errorf("locked element moved to X=%v, want 30", e.X)
	}
}

func TestDistributeUnknownAxis(t *testing.T) {
	p := page(el("a", 0, 0, 10, 10), el("b", 20, 0, 10, 10), el("c", 50, 0, 10, 10))
	if Distribute(p, []string{"a", "b", "c"}, Axis("depth")) {
		t.Error("unknown axis should be a no-op")
	}
}
