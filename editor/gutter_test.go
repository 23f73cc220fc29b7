package editor

import (
	"strings"
	"testing"
)

func TestLineNumbers_GrowKeepsExistingEntries(t *testing.T) {
	var g LineNumbers
	if !g.Sync(5) {
		t.Fatalf("Sync(5) on empty gutter: got false, want true")
	}
	before := append([]*LineNumber(nil), g.Entries()...)

	if !g.Sync(8) {
		t.Fatalf("Sync(8): got false, want true")
	}
	got := g.Entries()
	if len(got) != 8 {
		t.Fatalf("len after grow: got %d, want %d", len(got), 8)
	}
	for i := range before {
		if got[i] != before[i] {
			t.Fatalf("entry %d replaced on grow", i)
		}
	}
	for i, e := range got {
		if e.N != i+1 {
			t.Fatalf("entry %d: N=%d, want %d", i, e.N, i+1)
		}
	}
}

func TestLineNumbers_ShrinkTruncates(t *testing.T) {
	var g LineNumbers
	g.Sync(8)
	before := append([]*LineNumber(nil), g.Entries()...)

	if !g.Sync(5) {
		t.Fatalf("Sync(5): got false, want true")
	}
	got := g.Entries()
	if len(got) != 5 {
		t.Fatalf("len after shrink: got %d, want %d", len(got), 5)
	}
	for i := range got {
		if got[i] != before[i] || got[i].N != i+1 {
			t.Fatalf("entry %d changed on shrink", i)
		}
	}
}

func TestLineNumbers_SameCountIsUnchanged(t *testing.T) {
	var g LineNumbers
	g.Sync(3)
	first := g.Entries()[0]

	if g.Sync(3) {
		t.Fatalf("Sync(3) twice: got true, want false")
	}
	if g.Entries()[0] != first {
		t.Fatalf("entry replaced on same count")
	}
}

func TestLineNumbers_Width(t *testing.T) {
	var g LineNumbers
	tests := []struct {
		n, want int
	}{
		{0, 2},
		{9, 2},
		{10, 3},
		{120, 4},
	}
	for _, tt := range tests {
		g.Sync(tt.n)
		if got := g.Width(); got != tt.want {
			t.Fatalf("Width with %d rows: got %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestModel_GutterFollowsRowCount(t *testing.T) {
	m := newTestModel(t, Config{Text: "a\nb\nc\nd\ne", ShowGutter: true})
	before := append([]*LineNumber(nil), m.LineNumbers().Entries()...)
	if len(before) != 5 {
		t.Fatalf("initial entries: got %d, want %d", len(before), 5)
	}

	m, _ = m.Update(ValueMsg{Value: "a\nb\nc\nd\ne\nf\ng\nh", Source: SourceExternal})
	got := m.LineNumbers().Entries()
	if len(got) != 8 {
		t.Fatalf("entries after grow: got %d, want %d", len(got), 8)
	}
	for i := range before {
		if got[i] != before[i] {
			t.Fatalf("entry %d replaced", i)
		}
	}

	m, _ = m.Update(ValueMsg{Value: "a\nb\nc\nd\ne", Source: SourceExternal})
	if got := len(m.LineNumbers().Entries()); got != 5 {
		t.Fatalf("entries after shrink: got %d, want %d", got, 5)
	}
}

func TestModel_GutterRightAlignsNumbers(t *testing.T) {
	m := newTestModel(t, Config{Text: strings.Repeat("x\n", 10) + "x", ShowGutter: true})
	m = m.Blur()
	m = m.SetSize(10, 11)

	rows := strings.Split(m.View(), "\n")
	if got := strings.TrimRight(stripANSI(rows[0]), " "); got != " 1 x" {
		t.Fatalf("row 0: got %q, want %q", got, " 1 x")
	}
	if got := strings.TrimRight(stripANSI(rows[10]), " "); got != "11 x" {
		t.Fatalf("row 10: got %q, want %q", got, "11 x")
	}
}
