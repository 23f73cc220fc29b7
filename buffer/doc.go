// Package buffer implements the rune-accurate document model behind the
// editor: text, selection and a version counter.
//
// Offsets and columns count runes. Rows and columns are 0-based. Text is
// stored with '\n' line terminators only.
package buffer
