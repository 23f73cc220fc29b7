// Package token models highlighted text as a tree of leaf and composite
// tokens and splits such trees into lines without losing the highlighting
// structure of spans that cross line boundaries.
//
// Lengths are counted in runes.
package token
