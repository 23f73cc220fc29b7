// Package keyer hands out stable identities for lines addressed by the rune
// offset they start at, and keeps those identities attached to the same
// lines as edits move them.
package keyer

import (
	"slices"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/iw2rmb/codearea/edit"
	"github.com/iw2rmb/codearea/token"
)

// Key identifies a line across renders. The zero Key means no key.
type Key uuid.UUID

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool { return k == Key{} }

func (k Key) String() string { return uuid.UUID(k).String() }

type entry struct {
	key Key
	seq uint64
}

// Keyer maps line-start offsets to keys. It is owned by one editor and is
// not safe for concurrent use.
type Keyer struct {
	keys  map[int]entry
	seq   uint64
	terms token.Terminators
}

// New returns an empty Keyer treating terms as line terminators. A nil set
// means token.DefaultTerminators.
func New(terms token.Terminators) *Keyer {
	if terms == nil {
		terms = token.DefaultTerminators
	}
	return &Keyer{keys: make(map[int]entry), terms: terms}
}

// KeyAt returns the key of the line starting at offset, minting one when
// none is registered there.
func (k *Keyer) KeyAt(offset int) Key {
	if e, ok := k.keys[offset]; ok {
		return e.key
	}
	k.seq++
	e := entry{key: Key(uuid.New()), seq: k.seq}
	k.keys[offset] = e
	return e.key
}

// Lookup returns the key registered at offset without minting one.
func (k *Keyer) Lookup(offset int) (Key, bool) {
	e, ok := k.keys[offset]
	return e.key, ok
}

// Len returns the number of registered keys.
func (k *Keyer) Len() int { return len(k.keys) }

// Reset forgets every key.
func (k *Keyer) Reset() { clear(k.keys) }

// Prune forgets every key whose offset is not in keep and returns how many
// were dropped.
func (k *Keyer) Prune(keep map[int]struct{}) int {
	n := 0
	for off := range k.keys {
		if _, ok := keep[off]; !ok {
			delete(k.keys, off)
			n++
		}
	}
	return n
}

// Transform moves every registered offset through e.
//
// Offsets in retained text shift by the net length change before them.
// Offsets strictly inside deleted text are dropped. Text inserted exactly at
// a registered offset pushes the offset forward only when it ends in a line
// terminator, since only then does the keyed line move down; otherwise the
// line grew in place. Offsets past the new text length are dropped. When two
// keys land on one offset the earlier-issued key wins.
func (k *Keyer) Transform(e edit.Edit) {
	if len(k.keys) == 0 || e.IsNoop() {
		return
	}

	offs := make([]int, 0, len(k.keys))
	for off := range k.keys {
		offs = append(offs, off)
	}
	slices.Sort(offs)

	next := make(map[int]entry, len(k.keys))
	place := func(from, to int) {
		ent := k.keys[from]
		if cur, ok := next[to]; ok && cur.seq < ent.seq {
			return
		}
		next[to] = ent
	}

	i := 0
	oldPos, newPos := 0, 0
	for _, op := range e.Operations() {
		switch op.Kind {
		case edit.OpRetain:
			end := oldPos + op.End - op.Start
			for ; i < len(offs) && offs[i] < end; i++ {
				place(offs[i], newPos+max(offs[i]-oldPos, 0))
			}
			newPos += end - oldPos
			oldPos = end
		case edit.OpInsert:
			if !k.opensLine(op.Value) {
				for ; i < len(offs) && offs[i] <= oldPos; i++ {
					place(offs[i], newPos)
				}
			}
			newPos += op.OutLen()
		case edit.OpDelete:
			end := oldPos + op.End - op.Start
			for ; i < len(offs) && offs[i] <= oldPos; i++ {
				place(offs[i], newPos)
			}
			// Offsets strictly inside the deleted text are dropped.
			for i < len(offs) && offs[i] < end {
				i++
			}
			oldPos = end
		}
	}
	for ; i < len(offs); i++ {
		place(offs[i], newPos+max(offs[i]-oldPos, 0))
	}

	newLen := e.NewLen()
	for off := range next {
		if off > newLen {
			delete(next, off)
		}
	}
	k.keys = next
}

// opensLine reports whether inserted text ends in a line terminator.
func (k *Keyer) opensLine(s string) bool {
	r, size := utf8.DecodeLastRuneInString(s)
	return size > 0 && k.terms.Has(r)
}
