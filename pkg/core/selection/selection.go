// Package selection tracks the transient editing selection: which element
// ids are active and which single element is hovered.
//
// Selection is UI state, not document state. It is never captured in undo
// snapshots, and the editor clears it after every undo/redo.
package selection

import (
	"slices"

	"foliopress/pkg/core/document"
)

// Selection holds the selected id set and the hovered id. The zero value
// is an empty selection.
type Selection struct {
	ids     []string
	hovered string

	// InspectorOpen mirrors the convention that selecting anything opens
	// the contextual property panel. The UI layer owns the panel; this is
	// only the signal.
	InspectorOpen bool
}

// Click replaces the selection with the clicked element's resolved set:
// the whole group when the element is grouped, otherwise the element
// itself. Clicking empty space (unknown id) clears the selection.
func (s *Selection) Click(p *document.Page, id string) {
	if p == nil {
		s.Clear()
		return
	}
	resolved := p.ResolveGroup(id)
	if len(resolved) == 0 {
		s.Clear()
		return
	}
	s.ids = resolved
	s.InspectorOpen = true
}

// ShiftClick toggles the clicked element's resolved set in the selection.
// The whole set joins or leaves together: shift-clicking one member of a
// selected group deselects the entire group.
func (s *Selection) ShiftClick(p *document.Page, id string) {
	if p == nil {
		return
	}
	resolved := p.ResolveGroup(id)
	if len(resolved) == 0 {
		return
	}

	if s.ContainsAll(resolved) {
		s.ids = slices.DeleteFunc(s.ids, func(sel string) bool {
			return slices.Contains(resolved, sel)
		})
	} else {
		for _, r := range resolved {
			if !slices.Contains(s.ids, r) {
				s.ids = append(s.ids, r)
			}
		}
	}
	s.InspectorOpen = len(s.ids) > 0
}

// Set replaces the selection with exactly the given ids.
func (s *Selection) Set(ids ...string) {
	s.ids = slices.Clone(ids)
	s.InspectorOpen = len(ids) > 0
}

// Clear empties the selection and closes the inspector signal.
func (s *Selection) Clear() {
	s.ids = nil
	s.InspectorOpen = false
}

// IDs returns the selected ids in selection order. The slice is shared;
// callers must not mutate it.
func (s *Selection) IDs() []string { return s.ids }

// Contains reports whether the id is selected.
func (s *Selection) Contains(id string) bool { return slices.Contains(s.ids, id) }

// ContainsAll reports whether every id in the set is selected.
func (s *Selection) ContainsAll(ids []string) bool {
	for _, id := range ids {
		if !slices.Contains(s.ids, id) {
			return false
		}
	}
	return len(ids) > 0
}

// Empty reports whether nothing is selected.
func (s *Selection) Empty() bool { return len(s.ids) == 0 }

// Hover records the hovered element id ("" for none).
func (s *Selection) Hover(id string) { s.hovered = id }

// Hovered returns the hovered element id, or "".
func (s *Selection) Hovered() string { return s.hovered }

// Prune drops selected ids that no longer exist on the page, keeping the
// selection honest after removals and undo.
func (s *Selection) Prune(p *document.Page) {
	if p == nil {
		s.Clear()
		return
	}
	s.ids = slices.DeleteFunc(s.ids, func(id string) bool {
		return p.IndexOf(id) < 0
	})
	if len(s.ids) == 0 {
		s.InspectorOpen = false
	}
}
