package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Boundaries returns the rune offsets of every cluster boundary in text,
// starting with 0 and ending with the rune length of text.
func Boundaries(text string) []int {
	out := []int{0}
	if text == "" {
		return out
	}
	g := uniseg.NewGraphemes(text)
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Prev returns the cluster boundary before rune column col in text.
// Column 0 stays 0.
func Prev(text string, col int) int {
	prev := 0
	for _, b := range Boundaries(text) {
		if b >= col {
			break
		}
		prev = b
	}
	return prev
}

// Next returns the cluster boundary after rune column col in text.
// The end of text stays the end.
func Next(text string, col int) int {
	bounds := Boundaries(text)
	for _, b := range bounds {
		if b > col {
			return b
		}
	}
	return bounds[len(bounds)-1]
}

// Width returns the monospace cell width of text. Clusters runewidth
// measures as zero fall back to uniseg.
func Width(text string) int {
	w := runewidth.StringWidth(text)
	if w <= 0 {
		w = max(uniseg.StringWidth(text), 0)
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
