package edit

// Builder constructs an Edit against a known source text.
//
// Retain and Delete advance through the source; Insert writes new text at the
// current position. Build retains whatever source text remains.
type Builder struct {
	src    []rune
	pos    int
	pieces []piece
}

// NewBuilder returns a Builder over text.
func NewBuilder(text string) *Builder {
	return &Builder{src: []rune(text)}
}

// Retain copies the next n runes. It stops at the end of the source.
func (b *Builder) Retain(n int) *Builder {
	n = b.clamp(n)
	if n > 0 {
		b.pieces = append(b.pieces, piece{kind: OpRetain, n: n})
		b.pos += n
	}
	return b
}

// Insert writes value at the current position.
func (b *Builder) Insert(value string) *Builder {
	if value == "" {
		return b
	}
	r := []rune(value)
	b.pieces = append(b.pieces, piece{kind: OpInsert, n: len(r), text: r})
	return b
}

// Delete removes the next n runes. It stops at the end of the source.
func (b *Builder) Delete(n int) *Builder {
	n = b.clamp(n)
	if n > 0 {
		text := append([]rune(nil), b.src[b.pos:b.pos+n]...)
		b.pieces = append(b.pieces, piece{kind: OpDelete, n: n, text: text})
		b.pos += n
	}
	return b
}

// Replace deletes the runes in [start, end) and inserts value there, retaining
// everything else. It is shorthand for the common single-range edit.
func (b *Builder) Replace(start, end int, value string) *Builder {
	if start > b.pos {
		b.Retain(start - b.pos)
	}
	if end > b.pos {
		b.Delete(end - b.pos)
	}
	return b.Insert(value)
}

// Build returns the edit, retaining the rest of the source.
func (b *Builder) Build() Edit {
	b.Retain(len(b.src) - b.pos)
	return fromPieces(normalizePieces(b.pieces))
}

func (b *Builder) clamp(n int) int {
	if n < 0 {
		return 0
	}
	if rest := len(b.src) - b.pos; n > rest {
		return rest
	}
	return n
}
