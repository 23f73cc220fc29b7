package token

import "strings"

// Terminators is the set of runes that end a line.
type Terminators map[rune]struct{}

// DefaultTerminators treats only '\n' as a line terminator.
var DefaultTerminators = NewTerminators('\n')

// NewTerminators returns a terminator set holding rs.
func NewTerminators(rs ...rune) Terminators {
	out := make(Terminators, len(rs))
	for _, r := range rs {
		out[r] = struct{}{}
	}
	return out
}

// Has reports whether r terminates a line.
func (t Terminators) Has(r rune) bool {
	_, ok := t[r]
	return ok
}

// SplitLines converts a token tree into lines.
//
// Composites spanning several lines are replaced by one clone per line, each
// keeping the tag and aliases and carrying only that line's slice of content.
// Tokens with no content are dropped, so no line holds a zero-length token.
// A final empty line produced by a trailing terminator is dropped; empty input
// yields one empty line.
func SplitLines(tokens []Token, terms Terminators) []Line {
	if terms == nil {
		terms = DefaultTerminators
	}
	lines := splitLines(tokens, terms)
	if len(lines) > 1 && lines[len(lines)-1].Len() == 0 {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func splitLines(tokens []Token, terms Terminators) []Line {
	lines := []Line{nil}
	cur := 0
	for _, t := range tokens {
		if t.Kind == KindLeaf {
			for i, frag := range splitLeaf(t.Text, terms) {
				if i > 0 {
					lines = append(lines, nil)
					cur++
				}
				if frag != "" {
					lines[cur] = append(lines[cur], Leaf(frag))
				}
			}
			continue
		}

		sub := splitLines(t.Content, terms)
		if len(sub) == 1 {
			if sub[0].Len() > 0 {
				lines[cur] = append(lines[cur], t)
			}
			continue
		}
		for i, part := range sub {
			if i > 0 {
				lines = append(lines, nil)
				cur++
			}
			if part.Len() == 0 {
				continue
			}
			lines[cur] = append(lines[cur], t.clone(part))
		}
	}
	return lines
}

// splitLeaf splits text at every terminator rune. The result always has one
// more element than the number of terminators found.
func splitLeaf(text string, terms Terminators) []string {
	if !strings.ContainsFunc(text, terms.Has) {
		return []string{text}
	}
	var out []string
	start := 0
	for i, r := range text {
		if !terms.Has(r) {
			continue
		}
		out = append(out, text[start:i])
		start = i + len(string(r))
	}
	return append(out, text[start:])
}
