package selection

import (
	"fmt"

	"github.com/iw2rmb/codearea/edit"
)

// Direction records which end of a range holds the caret.
type Direction uint8

const (
	None Direction = iota
	Forward
	Backward
)

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return "unknown"
	}
}

// Range is a selection over rune offsets: [Start, End).
// Start <= End always; Direction says where the caret sits.
type Range struct {
	Start     int
	End       int
	Direction Direction
}

// Caret returns a collapsed range at off.
func Caret(off int) Range {
	return Range{Start: off, End: off}
}

// Between returns the range spanned by anchor and caret, oriented so the
// caret stays at the moving end.
func Between(anchor, caret int) Range {
	switch {
	case anchor < caret:
		return Range{Start: anchor, End: caret, Direction: Forward}
	case anchor > caret:
		return Range{Start: caret, End: anchor, Direction: Backward}
	default:
		return Caret(caret)
	}
}

// Caret returns the offset of the caret end.
func (r Range) Caret() int {
	if r.Direction == Backward {
		return r.Start
	}
	return r.End
}

// Anchor returns the offset of the fixed end.
func (r Range) Anchor() int {
	if r.Direction == Backward {
		return r.End
	}
	return r.Start
}

// Collapsed reports whether the range selects nothing.
func (r Range) Collapsed() bool { return r.Start == r.End }

// Valid reports whether 0 <= Start <= End <= length.
func (r Range) Valid(length int) bool {
	return 0 <= r.Start && r.Start <= r.End && r.End <= length
}

// Clamp returns r with both ends limited to [0, length].
func (r Range) Clamp(length int) Range {
	r.Start = min(max(r.Start, 0), length)
	r.End = min(max(r.End, 0), length)
	if r.Start > r.End {
		r.Start, r.End = r.End, r.Start
	}
	if r.Start == r.End {
		r.Direction = None
	}
	return r
}

func (r Range) String() string {
	return fmt.Sprintf("{%d,%d,%s}", r.Start, r.End, r.Direction)
}

// FromEdit derives the selection that should follow applying e.
//
// An insert places a forward selection over the inserted text, spanning from
// the first changed offset to the end of the last insert. A pure deletion
// collapses the caret at the first deleted offset. An edit that only retains
// yields false and the caller keeps its current selection.
func FromEdit(e edit.Edit) (Range, bool) {
	index := 0
	start, end := -1, -1
	for _, op := range e.Operations() {
		switch op.Kind {
		case edit.OpRetain:
			index += op.End - op.Start
		case edit.OpInsert:
			if start < 0 {
				start = index
			}
			index += op.OutLen()
			end = index
		case edit.OpDelete:
			if start < 0 {
				start = index
			}
		}
	}

	switch {
	case start >= 0 && end >= 0:
		return Range{Start: start, End: end, Direction: Forward}, true
	case start >= 0:
		return Caret(start), true
	default:
		return Range{}, false
	}
}
