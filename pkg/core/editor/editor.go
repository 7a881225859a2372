// Package editor composes the document store, history, selection, template
// applicator, and binding synchronizer into the single façade UI shells
// (CLI, TUI, HTTP) operate on.
//
// The editor owns two disciplines the underlying packages only enable:
//
//  1. Snapshot-before-mutate. Every structural mutation captures a full
//     document snapshot immediately before it applies, exactly once per
//     logical user action. A no-op mutation (stale id, unmet precondition)
//     discards its captured snapshot so undo history stays meaningful.
//  2. The gesture model. A continuous drag is three phases: BeginGesture
//     snapshots once, transient MoveSelection calls mutate geometry
//     without touching history, EndGesture commits. One undo therefore
//     reverts a whole drag regardless of its duration.
//
// The editor is single-threaded by contract: operations run to completion
// before the next is issued, and no operation observes a partially updated
// page. Hosts that introduce parallelism must serialize calls.
package editor

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"foliopress/pkg/core/align"
	"foliopress/pkg/core/binding"
	"foliopress/pkg/core/document"
	"foliopress/pkg/core/history"
	"foliopress/pkg/core/layout"
	"foliopress/pkg/core/selection"
	"foliopress/pkg/observability"
	"foliopress/pkg/product"
)

// Editor is the live editing session over one catalog document.
// Not safe for concurrent use.
type Editor struct {
	catalog   *document.Catalog
	history   history.History
	selection selection.Selection

	// CurrentPage is the zero-based page the UI is editing.
	CurrentPage int

	inGesture bool
	logger    *log.Logger
}

// New creates an editor over the given catalog. A nil catalog starts a
// fresh single-page document. A nil logger falls back to log.Default.
func New(c *document.Catalog, logger *log.Logger) *Editor {
	if c == nil {
		c = document.New("Untitled catalog")
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Editor{catalog: c, logger: logger}
}

// Catalog returns the live document. Callers must treat it as read-only;
// all mutation goes through the editor so history stays coherent.
func (e *Editor) Catalog() *document.Catalog { return e.catalog }

// Selection returns the mutable selection state.
func (e *Editor) Selection() *selection.Selection { return &e.selection }

// History exposes undo/redo availability for UI affordances.
func (e *Editor) History() *history.History { return &e.history }

// Page returns the current page, or nil when CurrentPage is stale.
func (e *Editor) Page() *document.Page { return e.catalog.Page(e.CurrentPage) }

// structural wraps a mutation with the snapshot-before-mutate discipline:
// the pre-state is captured first and committed to history only if the
// mutation reports a change.
func (e *Editor) structural(op string, mutate func() bool) bool {
	before := e.catalog.Clone()
	if !mutate() {
		return false
	}
	e.commit(before)
	observability.Editor().OnMutation(op)
	e.logger.Debug("mutation", "op", op, "page", e.CurrentPage)
	return true
}

// commit pushes a captured pre-state, unless a gesture is open (the
// gesture start already snapshotted).
func (e *Editor) commit(before *document.Catalog) {
	if e.inGesture {
		return
	}
	e.history.Push(before)
	observability.Editor().OnSnapshot(e.history.UndoDepth())
}

// =============================================================================
// Element operations
// =============================================================================

// AddElement appends the element to the current page and selects it.
func (e *Editor) AddElement(el document.Element) bool {
	if el.ID == "" {
		el.ID = uuid.NewString()
	}
	ok := e.structural("add-element", func() bool {
		return e.catalog.AddElement(e.CurrentPage, el)
	})
	if ok {
		e.selection.Set(el.ID)
	}
	return ok
}

// UpdateElement applies a partial update (property panel edits, upload
// callbacks). The callback may arrive after arbitrary intervening edits:
// the user may have navigated to another page, or a template application
// may have shifted page indices. The element is therefore resolved by id
// across the whole catalog, and the update no-ops only when the id no
// longer exists anywhere.
func (e *Editor) UpdateElement(id string, u document.Update) bool {
	return e.structural("update-element", func() bool {
		page, el := e.catalog.FindElement(id)
		if el == nil {
			return false
		}
		return e.catalog.UpdateElement(page, id, u)
	})
}

// RemoveElement deletes the element (cascading through its group) and
// prunes the selection.
func (e *Editor) RemoveElement(id string) bool {
	ok := e.structural("remove-element", func() bool {
		return e.catalog.RemoveElement(e.CurrentPage, id)
	})
	if ok {
		e.selection.Prune(e.Page())
	}
	return ok
}

// DuplicateElement copies the element and selects the copy.
func (e *Editor) DuplicateElement(id string) bool {
	ok := e.structural("duplicate-element", func() bool {
		return e.catalog.DuplicateElement(e.CurrentPage, id)
	})
	if ok {
		if p := e.Page(); p != nil {
			if i := p.IndexOf(id); i >= 0 && i+1 < len(p.Elements) {
				e.selection.Set(p.Elements[i+1].ID)
			}
		}
	}
	return ok
}

// NudgeSelection moves the selected elements by one step (arrow keys).
func (e *Editor) NudgeSelection(dx, dy float64) bool {
	return e.structural("nudge", func() bool {
		return e.catalog.MoveElements(e.CurrentPage, e.selection.IDs(), dx, dy)
	})
}

// ToggleLock flips the lock flag on an element.
func (e *Editor) ToggleLock(id string) bool {
	return e.structural("toggle-lock", func() bool {
		return e.catalog.ToggleLock(e.CurrentPage, id)
	})
}

// ReorderElement moves an element within the stacking order.
func (e *Editor) ReorderElement(id string, dir document.Direction) bool {
	return e.structural("reorder", func() bool {
		return e.catalog.ReorderElement(e.CurrentPage, id, dir)
	})
}

// SetElementOrder applies a front-to-back layer ordering from the UI.
func (e *Editor) SetElementOrder(orderedIDs []string) bool {
	return e.structural("set-order", func() bool {
		return e.catalog.SetElementOrder(e.CurrentPage, orderedIDs)
	})
}

// GroupSelection links the selected elements under a new group tag.
func (e *Editor) GroupSelection() string {
	var gid string
	e.structural("group", func() bool {
		gid = e.catalog.GroupElements(e.CurrentPage, e.selection.IDs())
		return gid != ""
	})
	return gid
}

// UngroupSelection dissolves the group of the first selected element.
func (e *Editor) UngroupSelection() bool {
	return e.structural("ungroup", func() bool {
		p := e.Page()
		if p == nil || e.selection.Empty() {
			return false
		}
		el := p.Element(e.selection.IDs()[0])
		if el == nil {
			return false
		}
		return e.catalog.Ungroup(e.CurrentPage, el.GroupID)
	})
}

// AlignSelection aligns the selected elements along the given edge.
func (e *Editor) AlignSelection(edge align.Edge) bool {
	return e.structural("align", func() bool {
		return align.Align(e.Page(), e.selection.IDs(), edge)
	})
}

// DistributeSelection spaces the selected elements along the axis.
func (e *Editor) DistributeSelection(axis align.Axis) bool {
	return e.structural("distribute", func() bool {
		return align.Distribute(e.Page(), e.selection.IDs(), axis)
	})
}

// =============================================================================
// Gestures
// =============================================================================

// BeginGesture opens a drag/resize gesture: history is snapshotted here,
// once, and transient updates until EndGesture bypass it. Nested calls are
// no-ops.
func (e *Editor) BeginGesture() {
	if e.inGesture {
		return
	}
	e.history.Push(e.catalog)
	observability.Editor().OnSnapshot(e.history.UndoDepth())
	e.inGesture = true
}

// MoveSelection applies a transient translation during a gesture. Outside
// a gesture it behaves like a one-shot structural move.
func (e *Editor) MoveSelection(dx, dy float64) bool {
	if e.inGesture {
		return e.catalog.MoveElements(e.CurrentPage, e.selection.IDs(), dx, dy)
	}
	return e.NudgeSelection(dx, dy)
}

// EndGesture commits the open gesture. The document already holds the
// final geometry; the snapshot from BeginGesture makes the whole gesture
// one undo step.
func (e *Editor) EndGesture() {
	e.inGesture = false
}

// =============================================================================
// History
// =============================================================================

// Undo restores the previous snapshot and clears the selection (selection
// is transient UI state, never restored by undo).
func (e *Editor) Undo() bool {
	prev := e.history.Undo(e.catalog)
	if prev == nil {
		return false
	}
	e.catalog = prev
	e.selection.Clear()
	e.clampPage()
	return true
}

// Redo restores the most recently undone snapshot and clears the selection.
func (e *Editor) Redo() bool {
	next := e.history.Redo(e.catalog)
	if next == nil {
		return false
	}
	e.catalog = next
	e.selection.Clear()
	e.clampPage()
	return true
}

func (e *Editor) clampPage() {
	if e.CurrentPage >= e.catalog.PageCount() {
		e.CurrentPage = e.catalog.PageCount() - 1
	}
	if e.CurrentPage < 0 {
		e.CurrentPage = 0
	}
}

// =============================================================================
// Pages, templates, binding
// =============================================================================

// AddPage appends an empty page and moves the editor to it.
func (e *Editor) AddPage(t document.PageType) bool {
	return e.structural("add-page", func() bool {
		e.CurrentPage = e.catalog.AddPage(t)
		return true
	})
}

// RemovePage deletes the page at the given index (at least one page
// always remains).
func (e *Editor) RemovePage(i int) bool {
	ok := e.structural("remove-page", func() bool {
		return e.catalog.RemovePage(i)
	})
	if ok {
		e.clampPage()
		e.selection.Clear()
	}
	return ok
}

// ApplyTemplate lays the products out with the grid template onto the
// current page, paginating overflow into inserted pages. One history entry
// covers the whole application.
func (e *Editor) ApplyTemplate(g layout.Grid, theme layout.Theme, items []product.Product) (int, error) {
	before := e.catalog.Clone()
	n, err := layout.Apply(e.catalog, e.CurrentPage, g, theme, items)
	if err != nil {
		return 0, err
	}
	e.commit(before)
	e.selection.Clear()
	observability.Editor().OnTemplateApply(g.Cols, g.Rows, len(items), n)
	e.logger.Debug("template applied", "cols", g.Cols, "rows", g.Rows, "items", len(items), "pages", n)
	return n, nil
}

// PlaceProduct drops a product into the first free slot of the current
// page, or free-floating when the page is full.
func (e *Editor) PlaceProduct(theme layout.Theme, item product.Product) bool {
	return e.structural("place-product", func() bool {
		return layout.PlaceProduct(e.catalog, e.CurrentPage, theme, item)
	})
}

// SyncProduct propagates a product edit into bound elements. Runs outside
// page editing, so it is one history entry of its own.
func (e *Editor) SyncProduct(p product.Product) int {
	var n int
	e.structural("sync-product", func() bool {
		n = binding.SyncProduct(e.catalog, p)
		return n > 0
	})
	if n > 0 {
		observability.Editor().OnSync(p.ID, n)
	}
	return n
}
