package layout

import (
	"testing"

	"foliopress/pkg/core/document"
)

func TestSlotsFormula(t *testing.T) {
	g := Grid{Cols: 2, Rows: 2, Padding: 20, Spacing: 10}
	slots := g.Slots(700, 1000)

	if len(slots) != 4 {
		t.Fatalf("got %d slots, want 4", len(slots))
	}

	// w = (700 - 2*20 - 1*10) / 2 = 325, h = (1000 - 2*20 - 1*10) / 2 = 475
	wantW, wantH := 325.0, 475.0
	for i, s := range slots {
		if s.Width != wantW || s.Height != wantH {
			t.Errorf("slot %d is %vx%v, want %vx%v", i, s.Width, s.Height, wantW, wantH)
		}
	}

	// Row-major placement.
	if slots[0].X != 20 || slots[0].Y != 20 {
		t.Errorf("slot 0 at (%v, %v), want (20, 20)", slots[0].X, slots[0].Y)
	}
	if slots[1].X != 20+325+10 || slots[1].Y != 20 {
		t.Errorf("slot 1 at (%v, %v), want (355, 20)", slots[1].X, slots[1].Y)
	}
	if slots[2].X != 20 || slots[2].Y != 20+475+10 {
		t.Errorf("slot 2 at (%v, %v), want (20, 505)", slots[2].X, slots[2].Y)
	}
}

func TestSlotsDegenerateGrid(t *testing.T) {
	if got := (Grid{Cols: 0, Rows: 2}).Slots(700, 1000); got != nil {
		t.Errorf("Slots() = %v, want nil for zero cols", got)
	}
	if got := (Grid{Cols: 2, Rows: -1}).Slots(700, 1000); got != nil {
		t.Errorf("Slots() = %v, want nil for negative rows", got)
	}
}

func TestPageSlotsOffsetByHeaderBand(t *testing.T) {
	g := Grid{Cols: 1, Rows: 1, Padding: 0}
	slots := g.PageSlots()

	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(slots))
	}
	if slots[0].Y != document.HeaderBand {
		t.Errorf("slot Y = %v, want offset below the header band (%v)", slots[0].Y, document.HeaderBand)
	}
	wantH := document.PageHeight - document.HeaderBand - document.FooterBand
	if slots[0].Height != wantH {
		t.Errorf("slot height = %v, want content height %v", slots[0].Height, wantH)
	}
	if slots[0].Width != document.PageWidth {
		t.Errorf("slot width = %v, want %v", slots[0].Width, document.PageWidth)
	}
}

func TestPagesNeeded(t *testing.T) {
	g := Grid{Cols: 2, Rows: 2}

	tests := []struct {
		items int
		want  int
	}{
		{0, 1},
		{1, 1},
		{4, 1},
		{5, 2},
		{10, 3},
	}
	for _, tt := range tests {
		if got := g.PagesNeeded(tt.items); got != tt.want {
			t.Errorf("PagesNeeded(%d) = %d, want %d", tt.items, got, tt.want)
		}
	}

	if got := (Grid{}).PagesNeeded(5); got != 0 {
		t.Errorf("degenerate grid PagesNeeded = %d, want 0", got)
	}
}
