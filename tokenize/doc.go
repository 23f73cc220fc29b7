// Package tokenize turns source text into a token.Token tree using chroma
// lexers, caches trees per text, and maps token tags to lipgloss styles.
package tokenize
