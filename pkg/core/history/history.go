// Package history provides bounded snapshot-based undo/redo for catalog
// documents.
//
// Each history entry is a full deep copy of the catalog taken immediately
// before a structural mutation. Whole-document snapshotting costs O(document
// size) per entry but makes undo trivially correct: restoring an entry
// cannot miss a field. Both stacks are bounded; the oldest undo entry is
// evicted when the bound is exceeded.
//
// One entry corresponds to one logical user action. Continuous gestures
// (drag, resize) snapshot once at gesture start so a single undo reverts
// the whole gesture regardless of how many intermediate positions it
// produced.
package history

import "foliopress/pkg/core/document"

// Depth is the maximum number of entries kept on each stack.
const Depth = 50

// History holds the undo and redo stacks. The zero value is ready to use.
// History is not safe for concurrent use; the editor serializes access.
type History struct {
	undo []*document.Catalog
	redo []*document.Catalog
}

// Push records a snapshot of the catalog as the newest undo entry and
// discards the redo stack: once a new mutation lands after an undo, the
// undone branch is unreachable. The oldest entry is evicted past Depth.
func (h *History) Push(c *document.Catalog) {
	h.undo = append(h.undo, c.Clone())
	if len(h.undo) > Depth {
		h.undo = h.undo[len(h.undo)-Depth:]
	}
	h.redo = nil
}

// Undo exchanges the current catalog for the most recent snapshot,
// pushing current onto the redo stack. Returns nil when there is nothing
// to undo; the caller keeps its current state in that case.
//
// Selection is deliberately not part of a snapshot: it is transient UI
// state, and the editor clears it after every undo.
func (h *History) Undo(current *document.Catalog) *document.Catalog {
	if len(h.undo) == 0 {
		return nil
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	h.redo = append(h.redo, current.Clone())
	if len(h.redo) > Depth {
		h.redo = h.redo[len(h.redo)-Depth:]
	}
	return top
}

// Redo is the mirror of Undo: it restores the most recently undone state
// and pushes the current one back onto the undo stack.
func (h *History) Redo(current *document.Catalog) *document.Catalog {
	if len(h.redo) == 0 {
		return nil
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	h.undo = append(h.undo, current.Clone())
	if len(h.undo) > Depth {
		h.undo = h.undo[len(h.undo)-Depth:]
	}
	return top
}

// CanUndo reports whether an undo entry exists.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo entry exists.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoDepth returns the number of undo entries, for bound checks and UI.
func (h *History) UndoDepth() int { return len(h.undo) }

// Clear drops both stacks, typically after loading a different catalog.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
}
