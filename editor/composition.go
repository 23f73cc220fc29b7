package editor

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codearea/buffer"
	"github.com/iw2rmb/codearea/edit"
	"github.com/iw2rmb/codearea/internal/log"
	"github.com/iw2rmb/codearea/selection"
)

// add folds e into the session's pending edit. If the edits cannot be
// chained the pending edit is returned for the caller to commit first.
func (c *composition) add(e edit.Edit) (edit.Edit, bool) {
	if !c.hasPending {
		c.pending, c.hasPending = e, true
		return edit.Edit{}, false
	}
	composed, err := edit.Compose(c.pending, e)
	if err != nil {
		log.ErrorErr(log.CatHistory, "compose composition edit failed, committing session so far", err)
		prev := c.pending
		c.pending = e
		return prev, true
	}
	c.pending = composed
	return edit.Edit{}, false
}

// startComposition opens a session over the selection and freezes the view.
func (m *Model) startComposition() {
	if m.comp.active {
		return
	}
	sel := m.buf.Selection()
	m.frame = m.View()
	m.comp = composition{active: true, start: sel.Start, n: sel.End - sel.Start}
	log.Debug(log.CatEditor, "composition start", "at", sel.Start)
}

// updateComposition replaces the preedit text. An update without a start
// opens the session implicitly.
func (m *Model) updateComposition(text string) {
	if m.cfg.ReadOnly {
		return
	}
	if !m.comp.active {
		m.startComposition()
	}
	text = buffer.NormalizeNewlines(text)
	start := m.comp.start
	e := m.buf.ReplaceEdit(start, start+m.comp.n, text)
	n := utf8.RuneCountInString(text)
	m.applyEdit(e, selection.Caret(start+n))
	m.comp.n = n
}

// endComposition commits the session as one undo entry and schedules the
// deferred refresh. A later schedule supersedes an earlier one.
func (m *Model) endComposition() tea.Cmd {
	if !m.comp.active {
		return nil
	}
	m.commitComposition()

	m.refreshSeq++
	m.refreshPending = true
	seq := m.refreshSeq
	log.Debug(log.CatEditor, "composition end, refresh scheduled", "seq", seq)
	return func() tea.Msg { return refreshMsg{seq: seq} }
}

// commitComposition appends the session's edit to the history and closes
// the session.
func (m *Model) commitComposition() {
	if !m.comp.active {
		return
	}
	if m.comp.hasPending {
		m.hist.Append(m.comp.pending.Normalize())
	}
	m.comp = composition{}
	m.lastSelection = m.buf.Selection()
}
