// Package edit implements retain/insert/delete edits over rune-indexed text:
// building, applying, normalizing, inverting, composing and diffing them.
package edit
