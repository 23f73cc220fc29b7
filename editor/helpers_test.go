package editor

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/codearea/token"
	"github.com/iw2rmb/codearea/tokenize"
)

// plainTokenizer returns the whole text as one leaf.
type plainTokenizer struct {
	calls int
}

func (p *plainTokenizer) Tokenize(text, grammar string, opts tokenize.Options) ([]token.Token, error) {
	p.calls++
	return []token.Token{token.Leaf(text)}, nil
}

func newTestModel(t *testing.T, cfg Config) Model {
	t.Helper()
	if cfg.Tokenizer == nil {
		cfg.Tokenizer = &plainTokenizer{}
	}
	return New(cfg)
}

func press(m Model, kt tea.KeyType) Model {
	m, _ = m.Update(tea.KeyMsg{Type: kt})
	return m
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func stripANSI(s string) string { return ansi.Strip(s) }

type failingTokenizer struct{}

func (failingTokenizer) Tokenize(string, string, tokenize.Options) ([]token.Token, error) {
	return nil, errors.New("boom")
}
