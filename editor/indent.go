package editor

import (
	"regexp"

	"github.com/iw2rmb/codearea/selection"
)

// indentPattern captures a row's leading whitespace and an open bracket at
// its end.
var indentPattern = regexp.MustCompile(`^(\s*).*?([(\[{])?\s*$`)

// autoIndent returns the indent for a row following before, the text left of
// the caret on the current row.
func autoIndent(before, tab string) string {
	g := indentPattern.FindStringSubmatch(before)
	if g == nil {
		return ""
	}
	if g[2] != "" {
		return g[1] + tab
	}
	return g[1]
}

// newline inserts a line break. With a collapsed selection the new row
// repeats the current row's indent, one level deeper after an open bracket.
func (m *Model) newline() {
	if m.cfg.ReadOnly {
		return
	}
	sel := m.buf.Selection()
	text := "\n"
	if sel.Collapsed() {
		caret := sel.Caret()
		row := m.buf.PosFromOffset(caret).Row
		text += autoIndent(m.buf.Slice(m.buf.LineStart(row), caret), m.cfg.TabString)
	}

	e, caret := m.buf.InsertEdit(text)
	m.source = SourceNewline
	if !m.applyEdit(e, selection.Caret(caret)) {
		m.source = SourceNone
	}
}
