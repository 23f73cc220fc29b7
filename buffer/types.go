package buffer

import (
	"cmp"
	"fmt"
)

// Pos is a 0-based row and rune column.
type Pos struct {
	Row int
	Col int
}

// Compare orders positions by row, then column.
func (p Pos) Compare(q Pos) int {
	if c := cmp.Compare(p.Row, q.Row); c != 0 {
		return c
	}
	return cmp.Compare(p.Col, q.Col)
}

// String formats p 1-based, as row:col.
func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Row+1, p.Col+1) }

// clampPos keeps p inside the document: the row within the line table and
// the column within that row.
func (b *Buffer) clampPos(p Pos) Pos {
	row := clampInt(p.Row, 0, len(b.lineStarts)-1)
	return Pos{Row: row, Col: clampInt(p.Col, 0, b.LineLen(row))}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
