package editor

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func shortRows(n int) string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = fmt.Sprintf("r%d", i)
	}
	return strings.Join(rows, "\n")
}

func TestViewportState_FollowsCaretAndReportsGutter(t *testing.T) {
	m := newTestModel(t, Config{Text: shortRows(12), ShowGutter: true})
	m = m.SetSize(20, 5)

	st := m.ViewportState()
	if st.TopRow != 0 || st.VisibleRows != 5 || st.GutterWidth != 3 {
		t.Fatalf("initial state: got %+v, want top 0, 5 rows, gutter 3", st)
	}

	m = press(m, tea.KeyCtrlEnd)
	if got, want := m.ViewportState().TopRow, 7; got != want {
		t.Fatalf("top row after doc end: got %d, want %d", got, want)
	}
}

func TestScreenToOffset_SkipsGutterAndClamps(t *testing.T) {
	m := newTestModel(t, Config{Text: shortRows(12), ShowGutter: true})
	m = m.SetSize(20, 5)
	m = press(m, tea.KeyCtrlEnd)

	cases := []struct {
		x, y int
		want int
	}{
		{x: 0, y: 0, want: 21},  // gutter maps to column 0 of row 7
		{x: 3, y: 0, want: 21},  // first text cell
		{x: 4, y: 0, want: 22},  // second text cell
		{x: 50, y: 0, want: 23}, // past the end of "r7"
		{x: 3, y: 4, want: 34},  // row 11 starts after ten 3-rune rows and "r10\n"
		{x: 3, y: 9, want: 34},  // below the last row
	}
	for _, tc := range cases {
		if got := m.ScreenToOffset(tc.x, tc.y); got != tc.want {
			t.Fatalf("ScreenToOffset(%d, %d): got %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestScrollPolicy_Wheel(t *testing.T) {
	wheel := tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}

	m := newTestModel(t, Config{Text: shortRows(12)})
	m = m.SetSize(20, 5)
	m, _ = m.Update(wheel)
	if got := m.ViewportState().TopRow; got == 0 {
		t.Fatalf("manual policy: wheel did not scroll")
	}

	m = newTestModel(t, Config{Text: shortRows(12), ScrollPolicy: ScrollFollowCaretOnly})
	m = m.SetSize(20, 5)
	m, _ = m.Update(wheel)
	if got := m.ViewportState().TopRow; got != 0 {
		t.Fatalf("follow-caret policy: top row got %d, want 0", got)
	}
}

func TestParseScrollPolicy(t *testing.T) {
	for _, p := range []ScrollPolicy{ScrollAllowManual, ScrollFollowCaretOnly} {
		got, err := ParseScrollPolicy(p.String())
		if err != nil || got != p {
			t.Fatalf("ParseScrollPolicy(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParseScrollPolicy("sideways"); err == nil {
		t.Fatalf("expected an error for an unknown name")
	}
	if got := ScrollPolicy(9).String(); got != "ScrollPolicy(9)" {
		t.Fatalf("String() = %q", got)
	}
}
