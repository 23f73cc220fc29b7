package buffer

import (
	"github.com/iw2rmb/codearea/edit"
	"github.com/iw2rmb/codearea/internal/grapheme"
)

// The methods below build edits against the current text without applying
// them. Each also returns the caret offset the editor should restore once
// the edit is applied.

// InsertEdit replaces the selection, or inserts at the caret, with s.
// Terminators in s are normalized.
func (b *Buffer) InsertEdit(s string) (edit.Edit, int) {
	s = NormalizeNewlines(s)
	start, end := b.sel.Start, b.sel.End
	e := b.replaceRange(start, end, s)
	return e, start + runeLen(s)
}

// BackspaceEdit deletes the selection, or the grapheme cluster before the
// caret. At the start of a row it joins the row with the previous one.
func (b *Buffer) BackspaceEdit() (edit.Edit, int) {
	if !b.sel.Collapsed() {
		return b.replaceRange(b.sel.Start, b.sel.End, ""), b.sel.Start
	}

	caret := b.sel.Caret()
	if caret == 0 {
		return b.replaceRange(0, 0, ""), 0
	}
	p := b.PosFromOffset(caret)
	if p.Col == 0 {
		return b.replaceRange(caret-1, caret, ""), caret - 1
	}
	start := b.LineStart(p.Row) + grapheme.Prev(b.Line(p.Row), p.Col)
	return b.replaceRange(start, caret, ""), start
}

// DeleteEdit deletes the selection, or the grapheme cluster after the caret.
// At the end of a row it joins the next row onto it.
func (b *Buffer) DeleteEdit() (edit.Edit, int) {
	if !b.sel.Collapsed() {
		return b.replaceRange(b.sel.Start, b.sel.End, ""), b.sel.Start
	}

	caret := b.sel.Caret()
	if caret == len(b.runes) {
		return b.replaceRange(caret, caret, ""), caret
	}
	p := b.PosFromOffset(caret)
	if p.Col == b.LineLen(p.Row) {
		return b.replaceRange(caret, caret+1, ""), caret
	}
	end := b.LineStart(p.Row) + grapheme.Next(b.Line(p.Row), p.Col)
	return b.replaceRange(caret, end, ""), caret
}

// ReplaceEdit replaces [start, end) with s.
func (b *Buffer) ReplaceEdit(start, end int, s string) edit.Edit {
	return b.replaceRange(start, end, NormalizeNewlines(s))
}

func (b *Buffer) replaceRange(start, end int, s string) edit.Edit {
	start = clampInt(start, 0, len(b.runes))
	end = clampInt(end, start, len(b.runes))
	return edit.NewBuilder(b.text).Replace(start, end, s).Build()
}

func runeLen(s string) int { return len([]rune(s)) }
