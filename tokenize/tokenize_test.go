package tokenize

import (
	"errors"
	"testing"

	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/codearea/token"
)

func findComposite(tokens []token.Token, tag string) (token.Token, bool) {
	for _, t := range tokens {
		if t.Kind != token.KindComposite {
			continue
		}
		if t.Tag == tag {
			return t, true
		}
		if got, ok := findComposite(t.Content, tag); ok {
			return got, true
		}
	}
	return token.Token{}, false
}

func TestChroma_TreeCoversTextExactly(t *testing.T) {
	tests := []struct {
		name    string
		grammar string
		text    string
	}{
		{"go with trailing newline", "go", "package main\n\nfunc main() {}\n"},
		{"go without trailing newline", "go", "package main\nfunc main() {}"},
		{"javascript", "javascript", "const x = `a\nb`; // done\n"},
		{"crlf kept", "go", "var a = 1\r\nvar b = 2\r\n"},
		{"unicode", "python", "s = 'héllo 中'\n"},
		{"unknown grammar", "no-such-grammar", "let y = 2"},
	}

	c := NewChroma()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := c.Tokenize(tt.text, tt.grammar, DefaultOptions())
			require.NoError(t, err)
			require.Equal(t, tt.text, token.Flatten(toks))
		})
	}
}

func TestChroma_EmptyText(t *testing.T) {
	toks, err := NewChroma().Tokenize("", "go", DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, toks)
}

func TestChroma_TypesNestUnderCategory(t *testing.T) {
	toks, err := NewChroma().Tokenize("func main() {}\n", "go", DefaultOptions())
	require.NoError(t, err)

	kw, ok := findComposite(toks, "Keyword")
	require.True(t, ok)
	require.NotEmpty(t, kw.Content)

	decl := kw.Content[0]
	require.Equal(t, token.KindComposite, decl.Kind)
	require.Equal(t, "KeywordDeclaration", decl.Tag)
	require.Equal(t, "func", decl.String())
	require.Equal(t, 4, kw.Length)
}

func TestChroma_BlockCommentSplitsAcrossLines(t *testing.T) {
	text := "/* one\ntwo\nthree */\nvar x = 1\n"
	toks, err := NewChroma().Tokenize(text, "go", DefaultOptions())
	require.NoError(t, err)

	comment, ok := findComposite(toks, "Comment")
	require.True(t, ok)
	require.Equal(t, "/* one\ntwo\nthree */", comment.String())

	lines := token.SplitLines(toks, nil)
	require.Len(t, lines, 4)
	for i := 0; i < 3; i++ {
		require.NotEmpty(t, lines[i])
		require.Equal(t, "Comment", lines[i][0].Tag)
	}
	require.Equal(t, "var x = 1", lines[3].String())
}

func TestLexer_Fallbacks(t *testing.T) {
	require.Equal(t, "Go", Lexer("go", "").Config().Name)
	require.Equal(t, "JavaScript", Lexer("no-such-grammar", "").Config().Name)
	require.Equal(t, "Python", Lexer("no-such-grammar", "python").Config().Name)
	require.NotNil(t, Lexer("no-such-grammar", "no-such-fallback"))
}

func TestGrammarForFile(t *testing.T) {
	require.Equal(t, "Go", GrammarForFile("main.go"))
	require.Equal(t, "", GrammarForFile("no-extension-match.zzzq"))
}

type countingTokenizer struct {
	calls int
	err   error
}

func (c *countingTokenizer) Tokenize(text, grammar string, opts Options) ([]token.Token, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return []token.Token{token.Leaf(text)}, nil
}

func TestCached_HitsAndMisses(t *testing.T) {
	next := &countingTokenizer{}
	c := NewCached(next, 0, 0)
	opts := DefaultOptions()

	_, err := c.Tokenize("a", "go", opts)
	require.NoError(t, err)
	toks, err := c.Tokenize("a", "go", opts)
	require.NoError(t, err)
	require.Equal(t, "a", token.Flatten(toks))
	require.Equal(t, 1, next.calls)

	_, _ = c.Tokenize("a", "python", opts)
	_, _ = c.Tokenize("b", "go", opts)
	opts.Coalesce = false
	_, _ = c.Tokenize("a", "go", opts)
	require.Equal(t, 4, next.calls)
	require.Equal(t, 4, c.Len())

	c.Flush()
	require.Equal(t, 0, c.Len())
}

func TestCached_DoesNotStoreErrors(t *testing.T) {
	next := &countingTokenizer{err: errors.New("boom")}
	c := NewCached(next, 0, 0)

	_, err := c.Tokenize("a", "go", DefaultOptions())
	require.Error(t, err)
	require.Equal(t, 0, c.Len())
}

func TestTheme_FallbackAndLookup(t *testing.T) {
	require.Equal(t, styles.Fallback.Name, NewTheme("no-such-theme").Name())

	th := NewTheme("monokai")
	require.Equal(t, "monokai", th.Name())

	chain := []token.Token{
		token.Composite("Keyword", nil),
		token.Composite("KeywordDeclaration", nil),
	}
	st := th.Style(chain)
	require.Equal(t, lipgloss.Color("#66d9ef"), st.GetForeground())

	unknown := th.Style([]token.Token{token.Composite("not-a-type", nil)})
	require.Equal(t, th.Text().GetForeground(), unknown.GetForeground())
}

func TestTheme_AliasResolves(t *testing.T) {
	th := NewTheme("monokai")
	withAlias := th.Style([]token.Token{token.Composite("custom", nil, "Keyword")})
	require.Equal(t, th.Style([]token.Token{token.Composite("Keyword", nil)}).GetForeground(), withAlias.GetForeground())
}

func TestTheme_ChromeStylesMatchOkFlag(t *testing.T) {
	th := NewTheme("monokai")

	ln, ok := th.LineNumbers()
	if ok {
		require.NotEqual(t, lipgloss.NoColor{}, ln.GetForeground())
	} else {
		require.Equal(t, lipgloss.NoColor{}, ln.GetForeground())
	}

	hl, ok := th.LineHighlight()
	require.Equal(t, lipgloss.NoColor{}, hl.GetForeground())
	if ok {
		require.NotEqual(t, lipgloss.NoColor{}, hl.GetBackground())
	}
}
