package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/codearea/internal/grapheme"
	"github.com/iw2rmb/codearea/selection"
	"github.com/iw2rmb/codearea/token"
	"github.com/iw2rmb/codearea/tokenize"
)

// lineSpan is the rune column range [start, end) of a row.
type lineSpan struct {
	start, end int
}

func (s lineSpan) empty() bool { return s.start >= s.end }
func (s lineSpan) contains(col int) bool { return col >= s.start && col < s.end }

// selectionSpan returns the part of sel that falls on row n.
func selectionSpan(sel selection.Range, n LineNode) lineSpan {
	if sel.Collapsed() {
		return lineSpan{}
	}
	l := n.Line.Len()
	s := lineSpan{
		start: clampInt(sel.Start-n.Offset, 0, l),
		end:   clampInt(sel.End-n.Offset, 0, l),
	}
	if s.empty() {
		return lineSpan{}
	}
	return s
}

type cellState uint8

const (
	cellPlain cellState = iota
	cellSelected
	cellCaret
)

// renderLine styles one row. Each leaf takes the theme style of its
// enclosing composites; the selection and caret are layered over it.
// caret is a rune column, or -1 when the row has no visible caret.
func renderLine(theme *tokenize.Theme, st Style, line token.Line, tabWidth int, sel lineSpan, caret int) string {
	var sb strings.Builder
	col, cell := 0, 0

	token.Walk(line, func(leaf string, chain []token.Token) {
		base := theme.Style(chain)
		var run strings.Builder
		runState := cellPlain
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(st.over(base, runState).Render(run.String()))
			run.Reset()
		}

		for _, g := range grapheme.Split(leaf) {
			n := utf8.RuneCountInString(g)
			state := cellPlain
			switch {
			case caret >= col && caret < col+n:
				state = cellCaret
			case sel.contains(col):
				state = cellSelected
			}
			if state != runState {
				flush()
				runState = state
			}
			text, w := expandCluster(g, cell, tabWidth)
			run.WriteString(text)
			col += n
			cell += w
		}
		flush()
	})

	if caret >= col {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

// expandCluster returns the text drawn for one grapheme cluster starting at
// cell, and its cell width. Tabs expand to the next tab stop.
func expandCluster(g string, cell, tabWidth int) (string, int) {
	if g == "\t" {
		w := tabWidth - cell%tabWidth
		return strings.Repeat(" ", w), w
	}
	return g, grapheme.Width(g)
}

// colAtCell maps a cell offset on a row to the rune column of the cluster
// drawn there. Cells past the end map to the end of the row.
func colAtCell(line string, target, tabWidth int) int {
	col, cell := 0, 0
	for _, g := range grapheme.Split(line) {
		_, w := expandCluster(g, cell, tabWidth)
		if target < cell+w {
			return col
		}
		col += utf8.RuneCountInString(g)
		cell += w
	}
	return col
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
