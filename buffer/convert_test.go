package buffer

import "testing"

func TestPosOffsetConversion(t *testing.T) {
	b := New("ab\n\nçd中")

	tests := []struct {
		off int
		pos Pos
	}{
		{0, Pos{Row: 0, Col: 0}},
		{2, Pos{Row: 0, Col: 2}},
		{3, Pos{Row: 1, Col: 0}},
		{4, Pos{Row: 2, Col: 0}},
		{7, Pos{Row: 2, Col: 3}},
	}
	for _, tt := range tests {
		if got := b.PosFromOffset(tt.off); got != tt.pos {
			t.Fatalf("PosFromOffset(%d)=%v, want %v", tt.off, got, tt.pos)
		}
		if got := b.OffsetFromPos(tt.pos); got != tt.off {
			t.Fatalf("OffsetFromPos(%v)=%d, want %d", tt.pos, got, tt.off)
		}
	}
}

func TestPosOffsetConversion_Clamps(t *testing.T) {
	b := New("ab\ncd")

	if got, want := b.PosFromOffset(-4), (Pos{}); got != want {
		t.Fatalf("pos=%v, want %v", got, want)
	}
	if got, want := b.PosFromOffset(99), (Pos{Row: 1, Col: 2}); got != want {
		t.Fatalf("pos=%v, want %v", got, want)
	}
	if got, want := b.OffsetFromPos(Pos{Row: 0, Col: 99}), 2; got != want {
		t.Fatalf("off=%d, want %d", got, want)
	}
	if got, want := b.OffsetFromPos(Pos{Row: 7, Col: 1}), 4; got != want {
		t.Fatalf("off=%d, want %d", got, want)
	}
}

func TestPos_CompareAndString(t *testing.T) {
	tests := []struct {
		a, b Pos
		want int
	}{
		{Pos{Row: 0, Col: 5}, Pos{Row: 1, Col: 0}, -1},
		{Pos{Row: 1, Col: 2}, Pos{Row: 1, Col: 1}, 1},
		{Pos{Row: 1, Col: 1}, Pos{Row: 1, Col: 1}, 0},
	}
	for _, tt := range tests {
		if got := tt.a.Compare(tt.b); got != tt.want {
			t.Fatalf("%v.Compare(%v)=%d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
	if got, want := (Pos{Row: 2, Col: 0}).String(), "3:1"; got != want {
		t.Fatalf("String()=%q, want %q", got, want)
	}
}

func TestClampPos(t *testing.T) {
	b := New("abc\nd")
	if got, want := b.clampPos(Pos{Row: 5, Col: 5}), (Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("clamp=%v, want %v", got, want)
	}
	if got, want := b.clampPos(Pos{Row: -1, Col: -1}), (Pos{}); got != want {
		t.Fatalf("clamp=%v, want %v", got, want)
	}
	if got, want := New("").clampPos(Pos{Row: 3, Col: 3}), (Pos{}); got != want {
		t.Fatalf("clamp(empty)=%v, want %v", got, want)
	}
}
