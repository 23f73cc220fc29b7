package editor

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codearea/tokenize"
)

func TestThemeStyle_NilThemeIsDefault(t *testing.T) {
	def := DefaultStyle()
	st := ThemeStyle(nil)
	if st.Selection.GetBackground() != def.Selection.GetBackground() {
		t.Fatalf("selection background = %v, want %v", st.Selection.GetBackground(), def.Selection.GetBackground())
	}
	if st.LineNum.GetForeground() != def.LineNum.GetForeground() {
		t.Fatalf("line number color = %v, want %v", st.LineNum.GetForeground(), def.LineNum.GetForeground())
	}
}

func TestThemeStyle_TakesThemeChrome(t *testing.T) {
	theme := tokenize.NewTheme("monokai")
	st := ThemeStyle(theme)

	if ln, ok := theme.LineNumbers(); ok {
		if st.LineNum.GetForeground() != ln.GetForeground() || st.Gutter.GetForeground() != ln.GetForeground() {
			t.Fatalf("gutter color = %v, want %v", st.LineNum.GetForeground(), ln.GetForeground())
		}
		if !st.LineNumActive.GetBold() {
			t.Fatalf("active line number should be bold")
		}
	}
	if hl, ok := theme.LineHighlight(); ok && st.Selection.GetBackground() != hl.GetBackground() {
		t.Fatalf("selection background = %v, want %v", st.Selection.GetBackground(), hl.GetBackground())
	}
	if !st.Cursor.GetReverse() {
		t.Fatalf("cursor should stay reversed")
	}
}

func TestStyle_OverLayersStateOnBase(t *testing.T) {
	st := Style{
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("#333333")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
	}
	red := lipgloss.Color("#ff0000")
	base := lipgloss.NewStyle().Foreground(red)

	if got := st.over(base, cellPlain).GetForeground(); got != red {
		t.Fatalf("plain foreground = %v", got)
	}
	sel := st.over(base, cellSelected)
	if sel.GetBackground() != lipgloss.Color("#333333") || sel.GetForeground() != red {
		t.Fatalf("selected = bg %v fg %v", sel.GetBackground(), sel.GetForeground())
	}
	caret := st.over(base, cellCaret)
	if !caret.GetReverse() || caret.GetForeground() != red {
		t.Fatalf("caret = reverse %v fg %v", caret.GetReverse(), caret.GetForeground())
	}
}
