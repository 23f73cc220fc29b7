// Package history groups applied edits into undo steps.
//
// Edits appended between two checkpoints compose into a single group, so one
// Undo reverts all of them. The caller decides where checkpoints fall.
package history
