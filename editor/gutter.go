package editor

import (
	"fmt"
	"strconv"
	"strings"
)

// LineNumber is one gutter entry. Entries are shared by pointer so a host
// can tell a retained entry from a new one.
type LineNumber struct {
	N int
}

// LineNumbers keeps one 1-based entry per row.
type LineNumbers struct {
	entries []*LineNumber
}

// Sync resizes the gutter to n entries and reports whether it changed.
//
// Growing appends entries numbered len+1..n and leaves existing entries
// untouched; shrinking truncates. An unchanged count returns immediately.
func (g *LineNumbers) Sync(n int) bool {
	if n < 0 {
		n = 0
	}
	p := len(g.entries)
	if n == p {
		return false
	}
	if n < p {
		clear(g.entries[n:])
		g.entries = g.entries[:n]
		return true
	}
	for i := p; i < n; i++ {
		g.entries = append(g.entries, &LineNumber{N: i + 1})
	}
	return true
}

// Len returns the number of entries.
func (g *LineNumbers) Len() int { return len(g.entries) }

// Entries returns the entries in row order. The slice is shared.
func (g *LineNumbers) Entries() []*LineNumber { return g.entries }

// Width returns the rendered cell width: the widest number plus one space.
func (g *LineNumbers) Width() int {
	return gutterDigits(len(g.entries)) + 1
}

func gutterDigits(lineCount int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount))
}

// cell renders the entry for row, right-aligned, followed by the separator.
func (g *LineNumbers) cell(st Style, row int, active bool) string {
	digits := gutterDigits(len(g.entries))
	num := strings.Repeat(" ", digits)
	if row >= 0 && row < len(g.entries) {
		num = fmt.Sprintf("%*d", digits, g.entries[row].N)
	}
	numStyle := st.LineNum
	if active {
		numStyle = st.LineNumActive
	}
	return numStyle.Render(num) + st.Gutter.Render(" ")
}
