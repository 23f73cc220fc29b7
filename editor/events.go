package editor

import (
	"github.com/iw2rmb/codearea/buffer"
	"github.com/iw2rmb/codearea/selection"
)

// RenderSource tags what caused a render cycle. It is set while a message is
// handled and consumed by the render at the end of the same Update.
type RenderSource uint8

const (
	SourceNone RenderSource = iota
	// SourceRefresh is the deferred render after a composition ends.
	SourceRefresh
	// SourceHistory marks text restored by undo or redo.
	SourceHistory
	// SourceNewline marks an Enter with auto-indent.
	SourceNewline
	// SourceExternal marks a value pushed by the host, e.g. a file reload.
	SourceExternal
)

func (s RenderSource) String() string {
	switch s {
	case SourceNone:
		return "none"
	case SourceRefresh:
		return "refresh"
	case SourceHistory:
		return "history"
	case SourceNewline:
		return "newline"
	case SourceExternal:
		return "external"
	default:
		return "unknown"
	}
}

// ValueMsg reports the host's view of the document text. When it differs
// from the editor's text the host wins. Source SourceExternal marks an
// intended replacement; any other mismatch is logged as an integrity warning.
type ValueMsg struct {
	Value  string
	Source RenderSource
}

// SelectionMsg sets the selection from outside the editor.
type SelectionMsg struct {
	Range selection.Range
}

// CompositionStartMsg opens an input method composition session.
type CompositionStartMsg struct{}

// CompositionUpdateMsg replaces the preedit text of the open session.
type CompositionUpdateMsg struct {
	Text string
}

// CompositionEndMsg closes the open session and commits its text.
type CompositionEndMsg struct{}

// UndoMsg and RedoMsg drive the history from outside the key map.
type (
	UndoMsg struct{}
	RedoMsg struct{}
)

// refreshMsg is the deferred render scheduled by a composition end. Only the
// latest scheduled seq renders.
type refreshMsg struct {
	seq uint64
}

// ChangeEvent is passed to Config.OnChange after every text or selection
// change.
type ChangeEvent struct {
	Version   uint64
	Value     string
	Selection selection.Range
	// TextChanged is false for selection-only changes.
	TextChanged bool
	Source      RenderSource
	// Change is the buffer mutation behind a text change; nil otherwise.
	Change *buffer.Change
}

func buildChangeEvent(b *buffer.Buffer, textChanged bool, src RenderSource) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		Value:       b.Text(),
		Selection:   b.Selection(),
		TextChanged: textChanged,
		Source:      src,
	}
	if textChanged {
		if c, ok := b.LastChange(); ok {
			ev.Change = &c
		}
	}
	return ev
}
