package buffer

import (
	"github.com/iw2rmb/codearea/internal/grapheme"
	"github.com/iw2rmb/codearea/selection"
)

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // if true, keeps the anchor and moves the caret; if false collapses the selection
}

// Move moves the caret and reports whether the selection changed.
func (b *Buffer) Move(m Move) bool {
	caret := b.moveCaret(b.sel.Caret(), m)

	next := selection.Caret(caret)
	if m.Extend {
		next = selection.Between(b.sel.Anchor(), caret)
	}
	return b.SetSelection(next)
}

func (b *Buffer) moveCaret(off int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(off, m.Dir)
	case MoveWord:
		return b.moveWord(off, m.Dir)
	case MoveLine:
		return b.moveLine(off, m.Dir)
	case MoveDoc:
		return b.moveDoc(off, m.Dir)
	default:
		return off
	}
}

func (b *Buffer) moveGrapheme(off int, dir MoveDir) int {
	p := b.PosFromOffset(off)
	line := b.Line(p.Row)

	switch dir {
	case DirLeft:
		if p.Col == 0 {
			return max(off-1, 0)
		}
		return b.LineStart(p.Row) + grapheme.Prev(line, p.Col)
	case DirRight:
		if p.Col == len([]rune(line)) {
			return min(off+1, len(b.runes))
		}
		return b.LineStart(p.Row) + grapheme.Next(line, p.Col)
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveWord(off int, dir MoveDir) int {
	p := b.PosFromOffset(off)
	line := b.Line(p.Row)
	clusters := grapheme.Split(line)
	bounds := grapheme.Boundaries(line)
	idx := clusterIndex(bounds, p.Col)

	switch dir {
	case DirLeft:
		return b.LineStart(p.Row) + bounds[prevWordBoundary(clusters, idx)]
	case DirRight:
		return b.LineStart(p.Row) + bounds[nextWordBoundary(clusters, idx)]
	default:
		return b.moveLine(off, dir)
	}
}

func (b *Buffer) moveLine(off int, dir MoveDir) int {
	p := b.PosFromOffset(off)
	lastRow := b.LineCount() - 1

	switch dir {
	case DirHome:
		return b.LineStart(p.Row)
	case DirEnd:
		return b.LineEnd(p.Row)
	case DirUp:
		if p.Row == 0 {
			return b.LineStart(0)
		}
		return b.offsetAtCol(p.Row-1, p.Col)
	case DirDown:
		if p.Row == lastRow {
			return b.LineEnd(lastRow)
		}
		return b.offsetAtCol(p.Row+1, p.Col)
	default:
		return off
	}
}

func (b *Buffer) moveDoc(off int, dir MoveDir) int {
	switch dir {
	case DirHome, DirUp:
		return 0
	case DirEnd, DirDown:
		return len(b.runes)
	default:
		return off
	}
}

// offsetAtCol returns the offset of col on row, clamped to the row and
// snapped back to a cluster boundary.
func (b *Buffer) offsetAtCol(row, col int) int {
	line := b.Line(row)
	bounds := grapheme.Boundaries(line)
	return b.LineStart(row) + bounds[clusterIndex(bounds, col)]
}

// clusterIndex returns the index of the last boundary at or before col.
func clusterIndex(bounds []int, col int) int {
	idx := 0
	for i, b := range bounds {
		if b > col {
			break
		}
		idx = i
	}
	return idx
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - newline is a hard boundary (so this operates on a single logical line)
func prevWordBoundary(line []string, col int) int {
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	i := col
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	if col < 0 {
		col = 0
	}
	if col > len(line) {
		col = len(line)
	}
	i := col
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
