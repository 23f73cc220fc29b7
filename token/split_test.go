package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func lineTexts(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.String())
	}
	return out
}

func TestSplitLines_EmptyInputYieldsOneEmptyLine(t *testing.T) {
	lines := SplitLines(nil, nil)
	require.Len(t, lines, 1)
	require.Empty(t, lines[0])

	lines = SplitLines([]Token{Leaf("")}, nil)
	require.Len(t, lines, 1)
	require.Empty(t, lines[0])
}

func TestSplitLines_TrailingTerminatorElided(t *testing.T) {
	lines := SplitLines([]Token{Leaf("a\nb\n")}, nil)
	require.Equal(t, []string{"a", "b"}, lineTexts(lines))
}

func TestSplitLines_OnlyOneTrailingTerminatorElided(t *testing.T) {
	lines := SplitLines([]Token{Leaf("a\n\n")}, nil)
	require.Equal(t, []string{"a", ""}, lineTexts(lines))

	lines = SplitLines([]Token{Leaf("\n")}, nil)
	require.Equal(t, []string{""}, lineTexts(lines))
}

func TestSplitLines_SingleLineCompositeKeptIntact(t *testing.T) {
	kw := Composite("keyword", []Token{Leaf("func")}, "declaration")
	lines := SplitLines([]Token{kw, Leaf(" main")}, nil)

	require.Len(t, lines, 1)
	require.Len(t, lines[0], 2)
	require.Equal(t, kw.Tag, lines[0][0].Tag)
	require.Equal(t, kw.Aliases, lines[0][0].Aliases)
	require.Equal(t, 4, lines[0][0].Length)
}

func TestSplitLines_MultiLineCompositeSplitsIntoClones(t *testing.T) {
	comment := Composite("comment", []Token{Leaf("/* one\ntwo\nthree */")}, "multiline", "block")
	lines := SplitLines([]Token{Leaf("x "), comment, Leaf(" y")}, nil)

	require.Equal(t, []string{"x /* one", "two", "three */ y"}, lineTexts(lines))

	var clones []Token
	for _, l := range lines {
		for _, tok := range l {
			if tok.Kind == KindComposite {
				clones = append(clones, tok)
			}
		}
	}
	require.Len(t, clones, 3)

	total := 0
	for _, c := range clones {
		require.Equal(t, "comment", c.Tag)
		require.Equal(t, []string{"multiline", "block"}, c.Aliases)
		require.Equal(t, Len(c.Content), c.Length)
		total += c.Length
	}
	require.Equal(t, comment.Length, total+2)
}

func TestSplitLines_ClonesDoNotShareAliasStorage(t *testing.T) {
	comment := Composite("comment", []Token{Leaf("a\nb")}, "multiline")
	lines := SplitLines([]Token{comment}, nil)
	require.Len(t, lines, 2)

	lines[0][0].Aliases[0] = "changed"
	require.Equal(t, "multiline", lines[1][0].Aliases[0])
	require.Equal(t, "multiline", comment.Aliases[0])
}

func TestSplitLines_EmptySliceProducesNoClone(t *testing.T) {
	// The string ends with a terminator, so its final slice is empty.
	str := Composite("string", []Token{Leaf("`a\n")})
	lines := SplitLines([]Token{str, Leaf("b")}, nil)

	require.Equal(t, []string{"`a", "b"}, lineTexts(lines))
	require.Len(t, lines[1], 1)
	require.True(t, lines[1][0].IsLeaf())
}

func TestSplitLines_DropsEmptyComposites(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   []string
	}{
		{
			name:   "after trailing terminator",
			tokens: []Token{Leaf("a\n"), Composite("comment", nil)},
			want:   []string{"a"},
		},
		{
			name:   "mid line",
			tokens: []Token{Leaf("a"), Composite("comment", []Token{Leaf("")}), Leaf("b")},
			want:   []string{"ab"},
		},
		{
			name:   "last slice of multi-line composite",
			tokens: []Token{Composite("string", []Token{Leaf("x\n"), Composite("escape", nil)})},
			want:   []string{"x"},
		},
		{
			name:   "only token",
			tokens: []Token{Composite("comment", nil)},
			want:   []string{""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := SplitLines(tt.tokens, nil)
			require.Equal(t, tt.want, lineTexts(lines))
			for _, l := range lines {
				for _, tok := range l {
					require.Positive(t, tok.Len())
				}
			}
		})
	}
}

func TestSplitLines_NestedComposites(t *testing.T) {
	inner := Composite("interpolation", []Token{Leaf("${a\n+b}")})
	outer := Composite("template-string", []Token{Leaf("`x"), inner, Leaf("`")}, "string")
	lines := SplitLines([]Token{outer}, nil)

	require.Equal(t, []string{"`x${a", "+b}`"}, lineTexts(lines))
	require.Len(t, lines[0], 1)

	first := lines[0][0]
	require.Equal(t, "template-string", first.Tag)
	require.Len(t, first.Content, 2)
	require.Equal(t, "interpolation", first.Content[1].Tag)
	require.Equal(t, 3, first.Content[1].Length)
	require.Equal(t, 5, first.Length)

	second := lines[1][0]
	require.Equal(t, "template-string", second.Tag)
	require.Equal(t, 4, second.Length)
	require.Equal(t, "interpolation", second.Content[0].Tag)
}

func TestSplitLines_CustomTerminators(t *testing.T) {
	lines := SplitLines([]Token{Leaf("a\rb\nc")}, NewTerminators('\r', '\n'))
	require.Equal(t, []string{"a", "b", "c"}, lineTexts(lines))

	lines = SplitLines([]Token{Leaf("a\rb")}, nil)
	require.Equal(t, []string{"a\rb"}, lineTexts(lines))
}

func TestSplitLines_LineLengthsTrackOffsets(t *testing.T) {
	text := "ab\n\ncdé\n"
	lines := SplitLines([]Token{Leaf(text)}, nil)

	offset := 0
	starts := make([]int, 0, len(lines))
	for _, l := range lines {
		starts = append(starts, offset)
		offset += l.Len() + 1
	}
	require.Equal(t, []int{0, 3, 4}, starts)
	require.Equal(t, len([]rune(text)), offset)
}

// genTree builds a random token tree up to depth levels deep.
func genTree(t *rapid.T, depth int) []Token {
	n := rapid.IntRange(0, 5).Draw(t, "n")
	out := make([]Token, 0, n)
	for i := 0; i < n; i++ {
		if depth > 0 && rapid.Bool().Draw(t, "composite") {
			tag := rapid.SampledFrom([]string{"comment", "string", "keyword", "punctuation"}).Draw(t, "tag")
			out = append(out, Composite(tag, genTree(t, depth-1), "alias"))
			continue
		}
		text := rapid.StringOfN(rapid.SampledFrom([]rune{'a', 'é', ' ', '\n', '{', '中'}), 0, 8, -1).Draw(t, "text")
		out = append(out, Leaf(text))
	}
	return out
}

func TestProperty_SplitLinesRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tree := genTree(rt, 3)
		text := Flatten(tree)

		lines := SplitLines(tree, nil)
		require.NotEmpty(rt, lines)

		parts := lineTexts(lines)
		got := strings.Join(parts, "\n")
		if strings.HasSuffix(text, "\n") {
			got += "\n"
		}
		require.Equal(rt, text, got)
	})
}

func TestProperty_SplitLinesKeepsLengthInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		tree := genTree(rt, 3)

		var check func(tokens []Token)
		check = func(tokens []Token) {
			for _, tok := range tokens {
				if tok.Kind != KindComposite {
					continue
				}
				require.Equal(rt, Len(tok.Content), tok.Length)
				check(tok.Content)
			}
		}
		for _, l := range SplitLines(tree, nil) {
			for _, tok := range l {
				require.NotContains(rt, tok.String(), "\n")
				require.Positive(rt, tok.Len())
			}
			check(l)
		}
	})
}
