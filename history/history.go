package history

import (
	"github.com/iw2rmb/codearea/edit"
	"github.com/iw2rmb/codearea/internal/log"
)

// DefaultLimit is the number of undo groups kept when New is given a
// non-positive limit.
const DefaultLimit = 1000

// History is an undo/redo stack of edit groups. It is not safe for
// concurrent use; the owning editor is its only writer.
type History struct {
	undo []edit.Edit
	redo []edit.Edit

	open    bool
	pending edit.Edit

	limit int
}

// New returns an empty history keeping at most limit groups.
func New(limit int) *History {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &History{limit: limit}
}

// Append adds e to the open group, opening one when needed, and discards
// the redo stack. No-op edits are ignored.
func (h *History) Append(e edit.Edit) {
	if e.IsNoop() {
		return
	}
	h.redo = nil

	if !h.open {
		h.pending = e
		h.open = true
		return
	}

	composed, err := edit.Compose(h.pending, e)
	if err != nil {
		log.ErrorErr(log.CatHistory, "compose into open group failed, starting new group", err,
			"group_len", h.pending.NewLen(), "edit_len", e.OldLen())
		h.Checkpoint()
		h.pending = e
		h.open = true
		return
	}
	h.pending = composed
}

// Checkpoint closes the open group so the next Append starts a new one.
func (h *History) Checkpoint() {
	if !h.open {
		return
	}
	h.open = false
	group := h.pending
	h.pending = edit.Edit{}
	if group.IsNoop() {
		return
	}

	h.undo = append(h.undo, group)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
}

// Undo closes the open group, moves the latest group to the redo stack and
// returns the edit reverting it. It reports false when there is nothing to
// undo.
func (h *History) Undo() (edit.Edit, bool) {
	h.Checkpoint()
	if len(h.undo) == 0 {
		return edit.Edit{}, false
	}

	i := len(h.undo) - 1
	group := h.undo[i]
	h.undo = h.undo[:i]
	h.redo = append(h.redo, group)
	return group.Invert(), true
}

// Redo moves the latest undone group back to the undo stack and returns it.
// It reports false when there is nothing to redo.
func (h *History) Redo() (edit.Edit, bool) {
	if len(h.redo) == 0 {
		return edit.Edit{}, false
	}

	i := len(h.redo) - 1
	group := h.redo[i]
	h.redo = h.redo[:i]
	h.undo = append(h.undo, group)
	return group, true
}

// CanUndo reports whether Undo would return an edit.
func (h *History) CanUndo() bool { return h.hasPending() || len(h.undo) > 0 }

// CanRedo reports whether Redo would return an edit.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Len returns the number of undo groups, counting an open group.
func (h *History) Len() int {
	if h.hasPending() {
		return len(h.undo) + 1
	}
	return len(h.undo)
}

// hasPending reports whether the open group changes the text. Inserting and
// then deleting the same run composes to a no-op group.
func (h *History) hasPending() bool { return h.open && !h.pending.IsNoop() }

// Pending reports whether edits have been appended since the last checkpoint.
func (h *History) Pending() bool { return h.open }

// Clear drops every group.
func (h *History) Clear() {
	h.undo = nil
	h.redo = nil
	h.open = false
	h.pending = edit.Edit{}
}
