package buffer

import (
	"fmt"

	"github.com/iw2rmb/codearea/edit"
	"github.com/iw2rmb/codearea/selection"
)

// Apply applies a locally produced edit.
func (b *Buffer) Apply(e edit.Edit) error {
	return b.apply(e, ChangeSourceLocal)
}

func (b *Buffer) apply(e edit.Edit, source ChangeSource) error {
	next, err := e.Apply(b.text)
	if err != nil {
		return fmt.Errorf("apply edit at version %d: %w", b.version, err)
	}
	if e.IsNoop() {
		return nil
	}

	change := b.beginChange(source)
	anchor, _ := e.MapOffset(b.sel.Anchor(), edit.AssocAfter)
	caret, _ := e.MapOffset(b.sel.Caret(), edit.AssocAfter)

	b.setText(next)
	b.sel = selection.Between(anchor, caret).Clamp(len(b.runes))
	b.version++
	b.commitChange(change, e)
	return nil
}
