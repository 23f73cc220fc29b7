package edit

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns an edit transforming oldText into newText.
func Diff(oldText, newText string) Edit {
	if oldText == newText {
		return NewBuilder(oldText).Build()
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	pieces := make([]piece, 0, len(diffs))
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			pieces = append(pieces, piece{kind: OpRetain, n: utf8.RuneCountInString(d.Text)})
		case diffmatchpatch.DiffInsert:
			r := []rune(d.Text)
			pieces = append(pieces, piece{kind: OpInsert, n: len(r), text: r})
		case diffmatchpatch.DiffDelete:
			r := []rune(d.Text)
			pieces = append(pieces, piece{kind: OpDelete, n: len(r), text: r})
		}
	}
	return fromPieces(normalizePieces(pieces))
}
