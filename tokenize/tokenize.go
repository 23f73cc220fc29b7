package tokenize

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/iw2rmb/codearea/internal/log"
	"github.com/iw2rmb/codearea/token"
)

// DefaultGrammar is used when a requested grammar is unknown.
const DefaultGrammar = "javascript"

// Options configures one Tokenize call.
type Options struct {
	// DefaultGrammar is tried when the requested grammar is unknown.
	// Empty means DefaultGrammar.
	DefaultGrammar string
	// Coalesce merges adjacent tokens of the same type.
	Coalesce bool
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{DefaultGrammar: DefaultGrammar, Coalesce: true}
}

// Tokenizer produces a token tree covering text exactly.
type Tokenizer interface {
	Tokenize(text, grammar string, opts Options) ([]token.Token, error)
}

// Chroma tokenizes with chroma lexers.
type Chroma struct{}

// NewChroma returns a chroma-backed Tokenizer.
func NewChroma() *Chroma { return &Chroma{} }

// Tokenize lexes text with the grammar named grammar. Unknown grammars fall
// back to opts.DefaultGrammar and then to chroma's plain-text lexer.
//
// Whitespace and plain text become leaves. Every other token is wrapped in a
// composite tagged with its chroma type, and runs of tokens sharing a
// category are grouped under one composite tagged with that category.
func (c *Chroma) Tokenize(text, grammar string, opts Options) ([]token.Token, error) {
	if text == "" {
		return nil, nil
	}

	lexer := Lexer(grammar, opts.DefaultGrammar)
	if opts.Coalesce {
		lexer = chroma.Coalesce(lexer)
	}

	it, err := lexer.Tokenise(&chroma.TokeniseOptions{State: "root"}, text)
	if err != nil {
		return nil, fmt.Errorf("tokenize %s: %w", lexer.Config().Name, err)
	}
	toks := trimToText(it.Tokens(), text)
	if toks == nil {
		log.Debug(log.CatTokenize, "lexer output does not cover text, using plain leaf",
			"lexer", lexer.Config().Name, "len", len(text))
		return []token.Token{token.Leaf(text)}, nil
	}
	return buildTree(toks), nil
}

// Lexer resolves grammar to a chroma lexer, trying fallback and then
// chroma's plain-text lexer.
func Lexer(grammar, fallback string) chroma.Lexer {
	if l := lexers.Get(grammar); l != nil {
		return l
	}
	if fallback == "" {
		fallback = DefaultGrammar
	}
	log.Debug(log.CatTokenize, "unknown grammar, falling back", "grammar", grammar, "fallback", fallback)
	if l := lexers.Get(fallback); l != nil {
		return l
	}
	return lexers.Fallback
}

// GrammarForFile returns the name of the lexer matching filename, or "" when
// none matches.
func GrammarForFile(filename string) string {
	l := lexers.Match(filename)
	if l == nil {
		return ""
	}
	return l.Config().Name
}

// trimToText drops a trailing newline some lexers append and returns nil when
// the tokens still do not reproduce text.
func trimToText(toks []chroma.Token, text string) []chroma.Token {
	var sb strings.Builder
	sb.Grow(len(text) + 1)
	for _, t := range toks {
		sb.WriteString(t.Value)
	}
	got := sb.String()
	if got == text {
		return toks
	}
	if got != text+"\n" || len(toks) == 0 {
		return nil
	}

	last := &toks[len(toks)-1]
	last.Value = strings.TrimSuffix(last.Value, "\n")
	if last.Value == "" {
		toks = toks[:len(toks)-1]
	}
	return toks
}

func isPlain(tt chroma.TokenType) bool {
	return tt == chroma.Text || tt == chroma.TextWhitespace
}

func buildTree(toks []chroma.Token) []token.Token {
	out := make([]token.Token, 0, len(toks))
	var group []token.Token
	var groupCat chroma.TokenType
	flush := func() {
		if len(group) > 0 {
			out = append(out, token.Composite(groupCat.String(), group))
		}
		group = nil
	}

	for _, t := range toks {
		if t.Value == "" {
			continue
		}
		if isPlain(t.Type) {
			flush()
			out = append(out, token.Leaf(t.Value))
			continue
		}

		cat := t.Type.Category()
		if cat <= 0 {
			cat = t.Type
		}
		if len(group) > 0 && cat != groupCat {
			flush()
		}
		groupCat = cat

		if t.Type == cat {
			group = append(group, token.Leaf(t.Value))
			continue
		}
		var aliases []string
		if sub := t.Type.SubCategory(); sub != t.Type && sub != cat {
			aliases = []string{sub.String()}
		}
		group = append(group, token.Composite(t.Type.String(), []token.Token{token.Leaf(t.Value)}, aliases...))
	}
	flush()
	return out
}
