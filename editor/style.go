package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codearea/tokenize"
)

// Style controls the editor's chrome. Token colors come from Config.Theme;
// Selection and Cursor are layered over them.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

// DefaultStyle uses fixed 256-color chrome that reads on dark terminals.
func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        dim,
		LineNum:       dim,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}

// ThemeStyle takes the gutter and selection colors from theme. Anything the
// theme leaves unset keeps its DefaultStyle value.
func ThemeStyle(theme *tokenize.Theme) Style {
	st := DefaultStyle()
	if theme == nil {
		return st
	}
	if ln, ok := theme.LineNumbers(); ok {
		st.Gutter = ln
		st.LineNum = ln
		st.LineNumActive = theme.Text().Bold(true)
	}
	if hl, ok := theme.LineHighlight(); ok {
		st.Selection = hl
	}
	return st
}

// over returns the style for a run drawn in state on top of the token
// style base.
func (s Style) over(base lipgloss.Style, state cellState) lipgloss.Style {
	switch state {
	case cellSelected:
		return s.Selection.Inherit(base)
	case cellCaret:
		return s.Cursor.Inherit(base)
	default:
		return base
	}
}
