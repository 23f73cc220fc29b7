package tokenize

import (
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codearea/token"
)

// DefaultTheme names the chroma style used when none is configured.
const DefaultTheme = "monokai"

// typesByName maps a chroma token type name, as used for token tags, back to
// the token type.
var typesByName = func() map[string]chroma.TokenType {
	m := make(map[string]chroma.TokenType, len(chroma.StandardTypes))
	for tt := range chroma.StandardTypes {
		m[tt.String()] = tt
	}
	return m
}()

// Theme maps token tags to lipgloss styles derived from a chroma style.
type Theme struct {
	style *chroma.Style

	mu   sync.Mutex
	memo map[string]lipgloss.Style
}

// NewTheme returns the theme for the chroma style called name. Unknown
// names resolve to chroma's fallback style.
func NewTheme(name string) *Theme {
	st := styles.Get(name)
	if st == nil {
		st = styles.Fallback
	}
	return &Theme{style: st, memo: make(map[string]lipgloss.Style)}
}

// Name returns the chroma style name.
func (t *Theme) Name() string { return t.style.Name }

// Text returns the style for untagged text.
func (t *Theme) Text() lipgloss.Style { return t.lookup(chroma.Text.String()) }

// LineNumbers returns the gutter style. ok is false when the chroma style
// sets no color for line numbers.
func (t *Theme) LineNumbers() (st lipgloss.Style, ok bool) {
	e := t.style.Get(chroma.LineNumbers)
	if !e.Colour.IsSet() {
		return lipgloss.NewStyle(), false
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(e.Colour.String())), true
}

// LineHighlight returns a background-only style for highlighted text, or
// false when the chroma style has no highlight background.
func (t *Theme) LineHighlight() (st lipgloss.Style, ok bool) {
	e := t.style.Get(chroma.LineHighlight)
	if !e.Background.IsSet() {
		return lipgloss.NewStyle(), false
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(e.Background.String())), true
}

// Style returns the style for a leaf enclosed by chain, outermost first.
// The innermost composite whose tag or alias names a known token type wins.
func (t *Theme) Style(chain []token.Token) lipgloss.Style {
	for i := len(chain) - 1; i >= 0; i-- {
		c := chain[i]
		if _, ok := typesByName[c.Tag]; ok {
			return t.lookup(c.Tag)
		}
		for _, a := range c.Aliases {
			if _, ok := typesByName[a]; ok {
				return t.lookup(a)
			}
		}
	}
	return t.Text()
}

func (t *Theme) lookup(name string) lipgloss.Style {
	t.mu.Lock()
	defer t.mu.Unlock()
	if st, ok := t.memo[name]; ok {
		return st
	}
	st := entryStyle(t.style.Get(typesByName[name]))
	t.memo[name] = st
	return st
}

func entryStyle(e chroma.StyleEntry) lipgloss.Style {
	st := lipgloss.NewStyle()
	if e.Colour.IsSet() {
		st = st.Foreground(lipgloss.Color(e.Colour.String()))
	}
	if e.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if e.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if e.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}
