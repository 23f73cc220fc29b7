package editor

import (
	"github.com/iw2rmb/codearea/internal/log"
	"github.com/iw2rmb/codearea/selection"
)

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; failures are logged and the action skipped.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

func (m *Model) copySelection() bool {
	if m.cfg.Clipboard == nil {
		return false
	}
	sel := m.buf.Selection()
	if sel.Collapsed() {
		return false
	}
	if err := m.cfg.Clipboard.WriteText(m.buf.Slice(sel.Start, sel.End)); err != nil {
		log.ErrorErr(log.CatEditor, "clipboard write failed", err)
		return false
	}
	return true
}

func (m *Model) cutSelection() {
	if m.cfg.ReadOnly || !m.copySelection() {
		return
	}
	sel := m.buf.Selection()
	m.applyEdit(m.buf.ReplaceEdit(sel.Start, sel.End, ""), selection.Caret(sel.Start))
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.cfg.ReadOnly {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		log.ErrorErr(log.CatEditor, "clipboard read failed", err)
		return
	}
	m.insert(s)
}
