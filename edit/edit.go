package edit

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	// ErrLengthMismatch is returned when an edit is applied to text whose
	// length differs from the edit's input length.
	ErrLengthMismatch = errors.New("edit: text length mismatch")
	// ErrComposeMismatch is returned when two edits cannot be chained.
	ErrComposeMismatch = errors.New("edit: compose length mismatch")
)

// OpKind identifies an operation variant.
type OpKind uint8

const (
	OpRetain OpKind = iota
	OpInsert
	OpDelete
)

func (k OpKind) String() string {
	switch k {
	case OpRetain:
		return "retain"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Operation is one step of an Edit.
//
// Start and End address the input text for retain and delete operations.
// Value is the inserted text for inserts and the removed text for deletes.
type Operation struct {
	Kind  OpKind
	Start int
	End   int
	Value string
}

// Retain copies input[start:end] to the output.
func Retain(start, end int) Operation {
	return Operation{Kind: OpRetain, Start: start, End: end}
}

// Insert writes value to the output.
func Insert(value string) Operation {
	return Operation{Kind: OpInsert, Value: value}
}

// Delete consumes input[start:end], which held value.
func Delete(start, end int, value string) Operation {
	return Operation{Kind: OpDelete, Start: start, End: end, Value: value}
}

// OutLen returns the number of runes the operation contributes to the output.
func (o Operation) OutLen() int {
	switch o.Kind {
	case OpRetain:
		return o.End - o.Start
	case OpInsert:
		return utf8.RuneCountInString(o.Value)
	default:
		return 0
	}
}

func (o Operation) String() string {
	switch o.Kind {
	case OpRetain:
		return fmt.Sprintf("retain(%d,%d)", o.Start, o.End)
	case OpInsert:
		return fmt.Sprintf("insert(%q)", o.Value)
	case OpDelete:
		return fmt.Sprintf("delete(%d,%d)", o.Start, o.End)
	default:
		return "unknown"
	}
}

// piece is the position-free form operations are manipulated in.
type piece struct {
	kind OpKind
	n    int
	text []rune
}

// Edit is an immutable, ordered sequence of operations transforming one text
// into another. The zero Edit transforms the empty text into itself.
type Edit struct {
	ops []Operation
}

// FromOperations builds an Edit from ops. Positions are recomputed from the
// order of ops; retain and delete lengths are taken from End-Start. A delete
// whose Value does not match its range length is treated as removing unknown
// text, which inverts to U+FFFD runes.
func FromOperations(ops ...Operation) Edit {
	return fromPieces(Edit{ops: ops}.pieces())
}

func fromPieces(pieces []piece) Edit {
	ops := make([]Operation, 0, len(pieces))
	pos := 0
	for _, p := range pieces {
		switch p.kind {
		case OpRetain:
			ops = append(ops, Retain(pos, pos+p.n))
			pos += p.n
		case OpInsert:
			ops = append(ops, Insert(string(p.text)))
		case OpDelete:
			ops = append(ops, Delete(pos, pos+p.n, string(p.text)))
			pos += p.n
		}
	}
	return Edit{ops: ops}
}

func (e Edit) pieces() []piece {
	out := make([]piece, 0, len(e.ops))
	for _, op := range e.ops {
		switch op.Kind {
		case OpRetain:
			out = append(out, piece{kind: OpRetain, n: max(op.End-op.Start, 0)})
		case OpInsert:
			r := []rune(op.Value)
			out = append(out, piece{kind: OpInsert, n: len(r), text: r})
		case OpDelete:
			n := max(op.End-op.Start, 0)
			r := []rune(op.Value)
			if len(r) != n {
				r = []rune(strings.Repeat(string(utf8.RuneError), n))
			}
			out = append(out, piece{kind: OpDelete, n: n, text: r})
		}
	}
	return out
}

// Operations returns a copy of the edit's operations.
func (e Edit) Operations() []Operation {
	return append([]Operation(nil), e.ops...)
}

// OldLen returns the rune length of the text the edit applies to.
func (e Edit) OldLen() int {
	n := 0
	for _, op := range e.ops {
		if op.Kind != OpInsert {
			n += op.End - op.Start
		}
	}
	return n
}

// NewLen returns the rune length of the text the edit produces.
func (e Edit) NewLen() int {
	n := 0
	for _, op := range e.ops {
		n += op.OutLen()
	}
	return n
}

// Delta returns NewLen minus OldLen.
func (e Edit) Delta() int { return e.NewLen() - e.OldLen() }

// IsNoop reports whether the edit only retains.
func (e Edit) IsNoop() bool {
	for _, op := range e.ops {
		switch op.Kind {
		case OpInsert:
			if op.Value != "" {
				return false
			}
		case OpDelete:
			if op.End > op.Start {
				return false
			}
		}
	}
	return true
}

func (e Edit) String() string {
	parts := make([]string, 0, len(e.ops))
	for _, op := range e.ops {
		parts = append(parts, op.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Apply returns text transformed by the edit.
func (e Edit) Apply(text string) (string, error) {
	src := []rune(text)
	if got, want := len(src), e.OldLen(); got != want {
		return "", fmt.Errorf("%w: edit expects %d runes, text has %d", ErrLengthMismatch, want, got)
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, op := range e.ops {
		switch op.Kind {
		case OpRetain:
			sb.WriteString(string(src[op.Start:op.End]))
		case OpInsert:
			sb.WriteString(op.Value)
		}
	}
	return sb.String(), nil
}

// Normalize returns an equivalent edit without empty operations, with
// adjacent operations of one kind merged, and with deletes ordered before
// inserts between two retains.
func (e Edit) Normalize() Edit {
	return fromPieces(normalizePieces(e.pieces()))
}

func normalizePieces(in []piece) []piece {
	out := make([]piece, 0, len(in))
	var del, ins []rune
	flush := func() {
		if len(del) > 0 {
			out = append(out, piece{kind: OpDelete, n: len(del), text: del})
		}
		if len(ins) > 0 {
			out = append(out, piece{kind: OpInsert, n: len(ins), text: ins})
		}
		del, ins = nil, nil
	}

	for _, p := range in {
		if p.n == 0 {
			continue
		}
		switch p.kind {
		case OpRetain:
			flush()
			if last := len(out) - 1; last >= 0 && out[last].kind == OpRetain {
				out[last].n += p.n
				continue
			}
			out = append(out, p)
		case OpInsert:
			ins = append(ins, p.text...)
		case OpDelete:
			del = append(del, p.text...)
		}
	}
	flush()
	return out
}

// Invert returns the edit that undoes e. It maps e's output back to e's input.
func (e Edit) Invert() Edit {
	pieces := e.pieces()
	for i := range pieces {
		switch pieces[i].kind {
		case OpInsert:
			pieces[i].kind = OpDelete
		case OpDelete:
			pieces[i].kind = OpInsert
		}
	}
	return fromPieces(normalizePieces(pieces))
}

// Compose returns a single edit equivalent to applying a and then b.
func Compose(a, b Edit) (Edit, error) {
	if a.NewLen() != b.OldLen() {
		return Edit{}, fmt.Errorf("%w: first edit produces %d runes, second expects %d", ErrComposeMismatch, a.NewLen(), b.OldLen())
	}

	pa, pb := a.pieces(), b.pieces()
	out := make([]piece, 0, len(pa)+len(pb))
	ia, ib := 0, 0
	var ca, cb piece
	loadA := func() bool {
		for ca.n == 0 && ia < len(pa) {
			ca = pa[ia]
			ia++
		}
		return ca.n > 0
	}
	loadB := func() bool {
		for cb.n == 0 && ib < len(pb) {
			cb = pb[ib]
			ib++
		}
		return cb.n > 0
	}

	for {
		okA, okB := loadA(), loadB()
		if okA && ca.kind == OpDelete {
			out = append(out, ca)
			ca = piece{}
			continue
		}
		if okB && cb.kind == OpInsert {
			out = append(out, cb)
			cb = piece{}
			continue
		}
		if !okA && !okB {
			break
		}
		if !okA || !okB {
			return Edit{}, fmt.Errorf("%w: operations out of step", ErrComposeMismatch)
		}

		n := min(ca.n, cb.n)
		switch {
		case ca.kind == OpRetain && cb.kind == OpRetain:
			out = append(out, piece{kind: OpRetain, n: n})
		case ca.kind == OpRetain && cb.kind == OpDelete:
			out = append(out, piece{kind: OpDelete, n: n, text: cb.text[:n]})
		case ca.kind == OpInsert && cb.kind == OpRetain:
			out = append(out, piece{kind: OpInsert, n: n, text: ca.text[:n]})
		}
		ca = consume(ca, n)
		cb = consume(cb, n)
	}
	return fromPieces(normalizePieces(out)), nil
}

func consume(p piece, n int) piece {
	p.n -= n
	if p.text != nil {
		p.text = p.text[n:]
	}
	return p
}

// Assoc says which side of text inserted exactly at an offset the offset
// sticks to when mapped through an edit.
type Assoc int8

const (
	// AssocBefore keeps the offset in front of the inserted text.
	AssocBefore Assoc = -1
	// AssocAfter moves the offset past the inserted text.
	AssocAfter Assoc = 1
)

// MapOffset maps an offset in e's input text to e's output text. The second
// result is false when the offset fell strictly inside deleted text; the
// returned offset is then where the deletion collapsed to.
func (e Edit) MapOffset(off int, assoc Assoc) (int, bool) {
	oldPos, newPos := 0, 0
	for _, op := range e.ops {
		switch op.Kind {
		case OpRetain:
			n := op.End - op.Start
			if off < oldPos+n {
				return newPos + max(off-oldPos, 0), true
			}
			oldPos += n
			newPos += n
		case OpInsert:
			if off <= oldPos && assoc == AssocBefore {
				return newPos, true
			}
			newPos += op.OutLen()
		case OpDelete:
			n := op.End - op.Start
			if off > oldPos && off < oldPos+n {
				return newPos, false
			}
			oldPos += n
		}
	}
	return newPos + max(off-oldPos, 0), true
}
