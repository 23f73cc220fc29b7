// Package editor provides a Bubble Tea code editing component with syntax
// highlighting backed by the buffer package.
//
// Each Update handles one message and renders at most once. The render
// tokenizes the text, splits the token tree into rows, keys every
// Config.AnchorInterval-th row, syncs the line-number gutter and reuses
// cached rows whose content did not change. Edits are grouped into undo
// steps until the selection moves or the editor loses focus; edits made
// during an input method composition are committed as one step when the
// composition ends.
package editor
