package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds keys to editor actions. It satisfies help.KeyMap.
//
// Word movement accepts both alt and ctrl arrows since terminals differ in
// which one they report.
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	ShiftHome, ShiftEnd                       key.Binding
	DocStart, DocEnd                          key.Binding

	Backspace, Delete key.Binding
	Enter, Tab        key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding
}

func bind(help, desc string, keys ...string) key.Binding {
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:       bind("←", "left", "left"),
		Right:      bind("→", "right", "right"),
		Up:         bind("↑", "up", "up"),
		Down:       bind("↓", "down", "down"),
		ShiftLeft:  bind("shift+←", "select left", "shift+left"),
		ShiftRight: bind("shift+→", "select right", "shift+right"),
		ShiftUp:    bind("shift+↑", "select up", "shift+up"),
		ShiftDown:  bind("shift+↓", "select down", "shift+down"),
		WordLeft:   bind("alt+←", "word left", "alt+left", "ctrl+left"),
		WordRight:  bind("alt+→", "word right", "alt+right", "ctrl+right"),
		Home:       bind("home", "line start", "home", "ctrl+a"),
		End:        bind("end", "line end", "end", "ctrl+e"),
		ShiftHome:  bind("shift+home", "select to line start", "shift+home"),
		ShiftEnd:   bind("shift+end", "select to line end", "shift+end"),
		DocStart:   bind("ctrl+home", "document start", "ctrl+home"),
		DocEnd:     bind("ctrl+end", "document end", "ctrl+end"),

		Backspace: bind("backspace", "delete left", "backspace", "ctrl+h"),
		Delete:    bind("del", "delete right", "delete"),
		Enter:     bind("enter", "newline", "enter"),
		Tab:       bind("tab", "indent", "tab"),

		Undo:  bind("ctrl+z", "undo", "ctrl+z"),
		Redo:  bind("ctrl+y", "redo", "ctrl+y"),
		Copy:  bind("ctrl+c", "copy", "ctrl+c"),
		Cut:   bind("ctrl+x", "cut", "ctrl+x"),
		Paste: bind("ctrl+v", "paste", "ctrl+v"),
	}
}

// ShortHelp lists the editing bindings worth a one-line hint.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Undo, k.Redo, k.Copy, k.Cut, k.Paste}
}

// FullHelp groups every binding by concern.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.WordLeft, k.WordRight},
		{k.Home, k.End, k.DocStart, k.DocEnd},
		{k.ShiftLeft, k.ShiftRight, k.ShiftUp, k.ShiftDown, k.ShiftHome, k.ShiftEnd},
		{k.Backspace, k.Delete, k.Enter, k.Tab},
		{k.Undo, k.Redo, k.Copy, k.Cut, k.Paste},
	}
}
