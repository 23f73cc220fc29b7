package editor

import (
	"github.com/iw2rmb/codearea/internal/log"
	"github.com/iw2rmb/codearea/keyer"
	"github.com/iw2rmb/codearea/token"
)

// LineNode is one row produced by the line pipeline.
type LineNode struct {
	// Key is set on anchor rows (every AnchorInterval rows) and zero
	// elsewhere.
	Key    keyer.Key
	Row    int
	Offset int
	Line   token.Line
}

// Anchored reports whether the row carries a key.
func (n LineNode) Anchored() bool { return !n.Key.IsZero() }

// buildLines tokenizes the buffer and splits the tree into rows.
//
// A terminator is appended before tokenizing. The splitter drops the final
// empty line that terminator produces, so a document ending in '\n' keeps its
// empty last row, where the caret can sit. Such a document therefore shows
// one more row than it has terminated lines: "a\nb\n" renders as three rows.
func (m *Model) buildLines() []LineNode {
	text := m.buf.Text() + "\n"
	tokens, err := m.cfg.Tokenizer.Tokenize(text, m.cfg.Grammar, m.cfg.TokenizeOptions)
	if err != nil {
		log.ErrorErr(log.CatTokenize, "tokenize failed, rendering plain text", err, "grammar", m.cfg.Grammar)
		tokens = []token.Token{token.Leaf(text)}
	}

	lines := token.SplitLines(tokens, nil)
	nodes := make([]LineNode, len(lines))
	anchors := make(map[int]struct{}, len(lines)/m.cfg.AnchorInterval+1)
	offset := 0
	for i, l := range lines {
		n := LineNode{Row: i, Offset: offset, Line: l}
		if i%m.cfg.AnchorInterval == 0 {
			n.Key = m.keys.KeyAt(offset)
			anchors[offset] = struct{}{}
		}
		nodes[i] = n
		offset += l.Len() + 1
	}

	// Keys left behind by rows that shifted off an anchor position are kept
	// until they outnumber the live anchors.
	if m.keys.Len() > 2*len(anchors) {
		dropped := m.keys.Prune(anchors)
		log.Debug(log.CatRender, "pruned line keys", "dropped", dropped, "anchors", len(anchors))
	}
	return nodes
}
