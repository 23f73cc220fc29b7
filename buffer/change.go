package buffer

import (
	"github.com/iw2rmb/codearea/edit"
	"github.com/iw2rmb/codearea/selection"
)

// ChangeSource identifies where a change originated.
type ChangeSource uint8

const (
	ChangeSourceLocal ChangeSource = iota
	ChangeSourceRemote
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceRemote:
		return "remote"
	default:
		return "unknown"
	}
}

// Change is a versioned text mutation.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	SelectionBefore selection.Range
	SelectionAfter  selection.Range
	Edit            edit.Edit
}

type changeBuilder struct {
	source          ChangeSource
	versionBefore   uint64
	selectionBefore selection.Range
}

// LastChange returns the most recent text change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:          source,
		versionBefore:   b.version,
		selectionBefore: b.sel,
	}
}

func (b *Buffer) commitChange(cb changeBuilder, e edit.Edit) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Source:          cb.source,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  b.sel,
		Edit:            e,
	}
	b.hasLastChange = true
}
