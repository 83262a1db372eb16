package annotation

// maxUndoDepth bounds the snapshot stack; the oldest entry is evicted when
// a new snapshot would exceed it.
const maxUndoDepth = 50

// History holds bounded undo/redo stacks of whole-state snapshots. Pushing a
// new snapshot clears the redo stack: history is linear, never branching.
type History struct {
	undo []*State
	redo []*State
}

// Push records a pre-mutation snapshot and clears the redo stack.
func (h *History) Push(snapshot *State) {
	h.undo = append(h.undo, snapshot)
	if len(h.undo) > maxUndoDepth {
		h.undo = h.undo[1:]
	}
	h.redo = nil
}

// Undo exchanges the current state for the most recent snapshot, moving the
// current state onto the redo stack. It returns nil when there is nothing to
// undo.
func (h *History) Undo(current *State) *State {
	if len(h.undo) == 0 {
		return nil
	}
	h.redo = append(h.redo, current.Clone())
	previous := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	return previous
}

// Redo reverses the most recent Undo. It returns nil when there is nothing
// to redo.
func (h *History) Redo(current *State) *State {
	if len(h.redo) == 0 {
		return nil
	}
	h.undo = append(h.undo, current.Clone())
	next := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	return next
}

// UndoDepth returns how many snapshots are available to undo.
func (h *History) UndoDepth() int { return len(h.undo) }

// RedoDepth returns how many snapshots are available to redo.
func (h *History) RedoDepth() int { return len(h.redo) }

// UndoStack exposes the undo snapshots oldest-first for persistence.
func (h *History) UndoStack() []*State { return h.undo }

// RedoStack exposes the redo snapshots oldest-first for persistence.
func (h *History) RedoStack() []*State { return h.redo }

// Restore replaces both stacks, trimming the undo stack to the bound.
func (h *History) Restore(undo, redo []*State) {
	if len(undo) > maxUndoDepth {
		undo = undo[len(undo)-maxUndoDepth:]
	}
	h.undo = undo
	h.redo = redo
}
