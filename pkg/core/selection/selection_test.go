package selection

import (
	"slices"
	"testing"

	"foliopress/pkg/core/document"
)

// page builds a test page with three elements; a and b share a group.
func page() *document.Page {
	p := document.NewPage(document.PageInterior)
	for _, id := range []string{"a", "b", "c"} {
		e := document.NewElement(document.TypeShape)
		e.ID = id
		p.Elements = append(p.Elements, e)
	}
	p.Elements[0].GroupID = "g"
	p.Elements[1].GroupID = "g"
	return &p
}

func TestClickSelectsResolvedSet(t *testing.T) {
	p := page()
	var s Selection

	s.Click(p, "c")
	if !slices.Equal(s.IDs(), []string{"c"}) {
		t.Errorf("IDs() = %v, want [c]", s.IDs())
	}
	if !s.InspectorOpen {
		t.Error("selecting should open the inspector")
	}

	// Clicking a group member selects the whole group, replacing c.
	s.Click(p, "a")
	if !slices.Equal(s.IDs(), []string{"a", "b"}) {
		t.Errorf("IDs() = %v, want the whole group", s.IDs())
	}
}

func TestClickUnknownClears(t *testing.T) {
	p := page()
	var s Selection
	s.Set("a", "b")

	s.Click(p, "nothing-here")
	if !s.Empty() {
		t.Errorf("clicking empty space should clear, IDs() = %v", s.IDs())
	}
	if s.InspectorOpen {
		t.Error("clearing should close the inspector")
	}
}

func TestShiftClickTogglesWholeSet(t *testing.T) {
	p := page()
	var s Selection

	s.ShiftClick(p, "c")
	s.ShiftClick(p, "a")
	if !slices.Equal(s.IDs(), []string{"c", "a", "b"}) {
		t.Errorf("IDs() = %v, want [c a b]", s.IDs())
	}

	// Shift-clicking one member drops the entire group.
	s.ShiftClick(p, "b")
	if !slices.Equal(s.IDs(), []string{"c"}) {
		t.Errorf("IDs() = %v, want [c]", s.IDs())
	}

	s.ShiftClick(p, "c")
	if !s.Empty() {
		t.Errorf("toggling the last id should empty the selection, IDs() = %v", s.IDs())
	}
	if s.InspectorOpen {
		t.Error("empty selection should close the inspector")
	}
}

func TestShiftClickUnknownIsNoop(t *testing.T) {
	p := page()
	var s Selection
	s.Set("c")

	s.ShiftClick(p, "missing")
	if !slices.Equal(s.IDs(), []string{"c"}) {
		t.Errorf("IDs() = %v, want unchanged [c]", s.IDs())
	}
}

func TestContains(t *testing.T) {
	var s Selection
	s.Set("a", "b")

	if !s.Contains("a") || s.Contains("x") {
		t.Error("Contains should match exactly the selected ids")
	}
	if !s.ContainsAll([]string{"a", "b"}) {
		t.Error("ContainsAll should hold for the full set")
	}
	if s.ContainsAll([]string{"a", "x"}) {
		t.Error("ContainsAll should fail when any id is missing")
	}
	if s.ContainsAll(nil) {
		t.Error("ContainsAll of an empty set should be false")
	}
}

func TestHover(t *testing.T) {
	var s Selection
	s.Hover("a")
	if s.Hovered() != "a" {
		t.Errorf("Hovered() = %q, want a", s.Hovered())
	}
	s.Hover("")
	if s.Hovered() != "" {
		t.Error("hover should clear")
	}
}

func TestPruneDropsStaleIDs(t *testing.T) {
	p := page()
	var s Selection
	s.Set("a", "c")

	p.Elements = p.Elements[1:] // drop a

	s.Prune(p)
	if !slices.Equal(s.IDs(), []string{"c"}) {
		t.Errorf("IDs() = %v, want [c]", s.IDs())
	}

	s.Prune(nil)
	if !s.Empty() {
		t.Error("pruning against a nil page should clear")
	}
}
