package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codearea/buffer"
	"github.com/iw2rmb/codearea/edit"
	"github.com/iw2rmb/codearea/internal/log"
	"github.com/iw2rmb/codearea/selection"
)

// Update handles one message and renders once if anything changed.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.FocusMsg:
		return m.Focus(), nil
	case tea.BlurMsg:
		return m.Blur(), nil
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case ValueMsg:
		m.setValue(msg)
	case SelectionMsg:
		if m.buf.SetSelection(msg.Range) {
			m.noteSelection()
			m.changed(false)
		}
	case CompositionStartMsg:
		m.startComposition()
	case CompositionUpdateMsg:
		m.updateComposition(msg.Text)
	case CompositionEndMsg:
		cmd = m.endComposition()
	case UndoMsg:
		m.undo()
	case RedoMsg:
		m.redo()
	case refreshMsg:
		if msg.seq == m.refreshSeq && m.refreshPending {
			m.refreshPending = false
			m.source = SourceRefresh
			m.dirty = true
		}
	}

	if m.dirty {
		m.render()
	}
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insert(string(msg.Runes))
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.ShiftHome):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome, Extend: true})
	case key.Matches(msg, km.ShiftEnd):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd, Extend: true})
	case key.Matches(msg, km.DocStart):
		m.move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			e, caret := m.buf.BackspaceEdit()
			m.applyEdit(e, selection.Caret(caret))
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			e, caret := m.buf.DeleteEdit()
			m.applyEdit(e, selection.Caret(caret))
		}
	case key.Matches(msg, km.Enter):
		m.newline()
	case key.Matches(msg, km.Tab):
		m.insert(m.cfg.TabString)

	case key.Matches(msg, km.Undo):
		m.undo()
	case key.Matches(msg, km.Redo):
		m.redo()

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.cutSelection()
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.insert(string(msg.Runes))
		} else if msg.Type == tea.KeySpace {
			m.insert(" ")
		}
	}

	return m, nil
}

func (m *Model) move(mv buffer.Move) {
	if m.buf.Move(mv) {
		m.noteSelection()
		m.changed(false)
	}
}

// noteSelection closes the open undo group when the selection moved away
// from where the last edit left it.
func (m *Model) noteSelection() {
	cur := m.buf.Selection()
	if cur == m.lastSelection {
		return
	}
	m.hist.Checkpoint()
	m.lastSelection = cur
	log.Debug(log.CatHistory, "checkpoint on selection change", "selection", cur)
}

func (m *Model) insert(s string) {
	if m.cfg.ReadOnly || s == "" {
		return
	}
	e, caret := m.buf.InsertEdit(s)
	m.applyEdit(e, selection.Caret(caret))
}

// applyEdit applies a locally produced edit, moves the selection to sel and
// records the edit: in the open composition when there is one, otherwise in
// the history.
func (m *Model) applyEdit(e edit.Edit, sel selection.Range) bool {
	if e.IsNoop() {
		return false
	}
	if err := m.buf.Apply(e); err != nil {
		log.ErrorErr(log.CatEditor, "apply edit failed", err, "version", m.buf.Version())
		return false
	}
	m.buf.SetSelection(sel)
	m.keys.Transform(e)

	if m.comp.active {
		if prev, ok := m.comp.add(e); ok {
			m.hist.Append(prev.Normalize())
		}
	} else {
		m.hist.Append(e.Normalize())
	}
	m.lastSelection = m.buf.Selection()
	m.changed(true)
	return true
}

func (m *Model) undo() {
	if m.comp.active || m.cfg.ReadOnly {
		return
	}
	if e, ok := m.hist.Undo(); ok {
		m.applyHistory(e)
	}
}

func (m *Model) redo() {
	if m.comp.active || m.cfg.ReadOnly {
		return
	}
	if e, ok := m.hist.Redo(); ok {
		m.applyHistory(e)
	}
}

// applyHistory applies an edit returned by the history without recording
// it again. The selection is derived from the edit itself.
func (m *Model) applyHistory(e edit.Edit) {
	if err := m.buf.Apply(e); err != nil {
		log.ErrorErr(log.CatHistory, "apply history edit failed", err, "version", m.buf.Version())
		return
	}
	if sel, ok := selection.FromEdit(e); ok {
		m.buf.SetSelection(sel)
	}
	m.keys.Transform(e)
	m.lastSelection = m.buf.Selection()
	m.source = SourceHistory
	m.changed(true)
}

// setValue makes the host's text authoritative. The difference is recorded
// as its own undo step.
func (m *Model) setValue(msg ValueMsg) {
	value := buffer.NormalizeNewlines(msg.Value)
	if value == m.buf.Text() {
		return
	}
	if msg.Source != SourceExternal {
		log.Warn(log.CatEditor, "host value differs from tracked value, using host value",
			"version", m.buf.Version(), "tracked_len", m.buf.Len(), "host_len", len([]rune(value)))
	}

	m.commitComposition()
	m.refreshPending = false

	e := m.buf.SetText(value)
	m.keys.Transform(e)
	m.hist.Checkpoint()
	m.hist.Append(e)
	m.hist.Checkpoint()

	m.lastSelection = m.buf.Selection()
	m.source = SourceExternal
	m.changed(true)
}
