package buffer

import (
	"strings"

	"github.com/iw2rmb/codearea/edit"
	"github.com/iw2rmb/codearea/selection"
)

// Buffer is the pure document state: text, selection and version.
type Buffer struct {
	text       string
	runes      []rune
	lineStarts []int

	sel     selection.Range
	version uint64

	lastChange    Change
	hasLastChange bool
}

// New returns a buffer holding text with line terminators normalized.
func New(text string) *Buffer {
	b := &Buffer{}
	b.setText(NormalizeNewlines(text))
	return b
}

// NormalizeNewlines rewrites CRLF and lone CR terminators to LF.
func NormalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

func (b *Buffer) setText(text string) {
	b.text = text
	b.runes = []rune(text)
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i, r := range b.runes {
		if r == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
}

func (b *Buffer) Text() string { return b.text }

// Len returns the rune length of the text.
func (b *Buffer) Len() int { return len(b.runes) }

// Version increases on every text or selection change.
func (b *Buffer) Version() uint64 { return b.version }

// LineCount returns the number of rows. A trailing '\n' opens a final empty
// row, so the empty document has one row.
func (b *Buffer) LineCount() int { return len(b.lineStarts) }

// LineStart returns the offset row starts at.
func (b *Buffer) LineStart(row int) int {
	row = clampInt(row, 0, len(b.lineStarts)-1)
	return b.lineStarts[row]
}

// LineEnd returns the offset of row's terminator, or the text length on the
// last row.
func (b *Buffer) LineEnd(row int) int {
	row = clampInt(row, 0, len(b.lineStarts)-1)
	if row+1 < len(b.lineStarts) {
		return b.lineStarts[row+1] - 1
	}
	return len(b.runes)
}

// LineLen returns the rune length of row, terminator excluded.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lineStarts) {
		return 0
	}
	return b.LineEnd(row) - b.LineStart(row)
}

// Line returns the text of row, terminator excluded.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lineStarts) {
		return ""
	}
	return string(b.runes[b.LineStart(row):b.LineEnd(row)])
}

// Slice returns the text in [start, end), clamped to the document.
func (b *Buffer) Slice(start, end int) string {
	start = clampInt(start, 0, len(b.runes))
	end = clampInt(end, start, len(b.runes))
	return string(b.runes[start:end])
}

// Selection returns the current selection. A collapsed selection is the
// caret.
func (b *Buffer) Selection() selection.Range { return b.sel }

// Caret returns the caret offset.
func (b *Buffer) Caret() int { return b.sel.Caret() }

// SetSelection clamps r into the document and stores it. It reports whether
// the selection changed.
func (b *Buffer) SetSelection(r selection.Range) bool {
	next := r.Clamp(len(b.runes))
	if next == b.sel {
		return false
	}
	b.sel = next
	b.version++
	return true
}

// SetCaret collapses the selection at off.
func (b *Buffer) SetCaret(off int) bool {
	return b.SetSelection(selection.Caret(off))
}

// SetText replaces the whole text and returns the edit that performed the
// replacement. The selection is mapped through that edit.
func (b *Buffer) SetText(text string) edit.Edit {
	e := edit.Diff(b.text, NormalizeNewlines(text))
	if e.IsNoop() {
		return e
	}
	// Diff always matches the current text.
	_ = b.apply(e, ChangeSourceRemote)
	return e
}
