package token

import (
	"strings"
	"unicode/utf8"
)

// Kind discriminates the two token variants.
type Kind uint8

const (
	KindLeaf Kind = iota
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// Token is either a leaf of plain text or a tagged span with nested children.
//
// Leaves use only Text. Composites use Tag, Content, Aliases and Length, where
// Length is the rune count of all leaf descendants.
type Token struct {
	Kind Kind

	Text string

	Tag     string
	Content []Token
	Aliases []string
	Length  int
}

// Leaf returns a leaf token holding text.
func Leaf(text string) Token {
	return Token{Kind: KindLeaf, Text: text}
}

// Composite returns a composite token that owns content. Length is computed
// from content.
func Composite(tag string, content []Token, aliases ...string) Token {
	return Token{
		Kind:    KindComposite,
		Tag:     tag,
		Content: content,
		Aliases: aliases,
		Length:  Len(content),
	}
}

// IsLeaf reports whether t is a leaf.
func (t Token) IsLeaf() bool { return t.Kind == KindLeaf }

// Len returns the rune length of t.
func (t Token) Len() int {
	if t.Kind == KindLeaf {
		return utf8.RuneCountInString(t.Text)
	}
	return t.Length
}

// String returns the flattened leaf text of t.
func (t Token) String() string {
	if t.Kind == KindLeaf {
		return t.Text
	}
	return Flatten(t.Content)
}

// HasAlias reports whether alias is one of t's aliases.
func (t Token) HasAlias(alias string) bool {
	for _, a := range t.Aliases {
		if a == alias {
			return true
		}
	}
	return false
}

// clone returns a composite with t's tag and aliases that owns content.
func (t Token) clone(content []Token) Token {
	var aliases []string
	if len(t.Aliases) > 0 {
		aliases = append([]string(nil), t.Aliases...)
	}
	return Composite(t.Tag, content, aliases...)
}

// Len returns the summed rune length of tokens.
func Len(tokens []Token) int {
	n := 0
	for _, t := range tokens {
		n += t.Len()
	}
	return n
}

// Flatten concatenates the leaf text of tokens in order.
func Flatten(tokens []Token) string {
	var sb strings.Builder
	writeFlat(&sb, tokens)
	return sb.String()
}

func writeFlat(sb *strings.Builder, tokens []Token) {
	for _, t := range tokens {
		if t.Kind == KindLeaf {
			sb.WriteString(t.Text)
			continue
		}
		writeFlat(sb, t.Content)
	}
}

// Walk visits every leaf of tokens in order together with the chain of
// composites enclosing it, outermost first. The chain slice is reused between
// calls.
func Walk(tokens []Token, fn func(leaf string, chain []Token)) {
	walk(tokens, nil, fn)
}

func walk(tokens []Token, chain []Token, fn func(string, []Token)) []Token {
	for _, t := range tokens {
		if t.Kind == KindLeaf {
			if t.Text != "" {
				fn(t.Text, chain)
			}
			continue
		}
		chain = append(chain, t)
		chain = walk(t.Content, chain, fn)
		chain = chain[:len(chain)-1]
	}
	return chain
}

// Line is the tokens between two line terminators, terminators excluded.
type Line []Token

// Len returns the rune length of the line, terminator excluded.
func (l Line) Len() int { return Len(l) }

// String returns the flattened text of the line.
func (l Line) String() string { return Flatten(l) }
