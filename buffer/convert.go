package buffer

import "sort"

// PosFromOffset converts a rune offset to a position. Offsets outside the
// document are clamped.
func (b *Buffer) PosFromOffset(off int) Pos {
	off = clampInt(off, 0, len(b.runes))
	row := sort.Search(len(b.lineStarts), func(i int) bool { return b.lineStarts[i] > off }) - 1
	if row < 0 {
		row = 0
	}
	return Pos{Row: row, Col: off - b.lineStarts[row]}
}

// OffsetFromPos converts a position to a rune offset. Positions outside the
// document are clamped.
func (b *Buffer) OffsetFromPos(p Pos) int {
	p = b.clampPos(p)
	return b.lineStarts[p.Row] + p.Col
}
