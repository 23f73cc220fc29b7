// Package selection models a caret/selection range over rune offsets and
// reconstructs one from the operations of an edit.
package selection
