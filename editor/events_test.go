package editor

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codearea/buffer"
	"github.com/iw2rmb/codearea/internal/log"
	"github.com/iw2rmb/codearea/selection"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := newTestModel(t, Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})
	events = nil

	m = press(m, tea.KeyRight)
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if got := events[0].Value; got != "ab" {
		t.Fatalf("event text after move: got %q, want %q", got, "ab")
	}
	if got := events[0].Selection; got != selection.Caret(1) {
		t.Fatalf("event selection after move: got %v, want %v", got, selection.Caret(1))
	}
	if events[0].TextChanged {
		t.Fatalf("move reported a text change")
	}

	m = press(m, tea.KeyRight) // to EOL
	if len(events) != 2 {
		t.Fatalf("events after move to EOL: got %d, want %d", len(events), 2)
	}

	m = press(m, tea.KeyRight) // no-op at EOL
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}

	_ = typeText(m, "X")
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 3)
	}
	if got := events[2].Value; got != "abX" {
		t.Fatalf("event text after insert: got %q, want %q", got, "abX")
	}
	if !events[2].TextChanged {
		t.Fatalf("insert did not report a text change")
	}
}

func TestValueMsg_MismatchWarnsAndHostWins(t *testing.T) {
	var out bytes.Buffer
	log.SetOutput(&out)
	t.Cleanup(func() { log.SetOutput(nil) })

	m := newTestModel(t, Config{Text: "abc"})
	m, _ = m.Update(ValueMsg{Value: "abd"})

	if got := m.Value(); got != "abd" {
		t.Fatalf("text: got %q, want %q", got, "abd")
	}
	if !strings.Contains(out.String(), "[WARN] [editor] host value differs") {
		t.Fatalf("missing integrity warning in log:\n%s", out.String())
	}
	if got := m.LastRenderSource(); got != SourceExternal {
		t.Fatalf("render source: got %v, want %v", got, SourceExternal)
	}

	out.Reset()
	m, _ = m.Update(ValueMsg{Value: "reloaded", Source: SourceExternal})
	if strings.Contains(out.String(), "[WARN]") {
		t.Fatalf("external replacement logged a warning:\n%s", out.String())
	}

	out.Reset()
	m, _ = m.Update(ValueMsg{Value: "reloaded"})
	if strings.Contains(out.String(), "[WARN]") {
		t.Fatalf("matching value logged a warning:\n%s", out.String())
	}
}

func TestValueMsg_IsItsOwnUndoStep(t *testing.T) {
	m := newTestModel(t, Config{Text: "a"})
	m = typeText(m, "b")
	m, _ = m.Update(ValueMsg{Value: "xyz", Source: SourceExternal})

	m = press(m, tea.KeyCtrlZ)
	if got := m.Value(); got != "ba" {
		t.Fatalf("text after first undo: got %q, want %q", got, "ba")
	}
	m = press(m, tea.KeyCtrlZ)
	if got := m.Value(); got != "a" {
		t.Fatalf("text after second undo: got %q, want %q", got, "a")
	}
}

func TestSelectionMsg_ClosesUndoGroup(t *testing.T) {
	m := newTestModel(t, Config{})
	m = typeText(m, "ab")
	m, _ = m.Update(SelectionMsg{Range: selection.Caret(1)})
	m = typeText(m, "x")
	if got := m.Value(); got != "axb" {
		t.Fatalf("text: got %q, want %q", got, "axb")
	}

	m = press(m, tea.KeyCtrlZ)
	if got := m.Value(); got != "ab" {
		t.Fatalf("text after undo: got %q, want %q", got, "ab")
	}
}

func TestOnChange_CarriesBufferChange(t *testing.T) {
	var events []ChangeEvent
	m := newTestModel(t, Config{
		Text:     "ab",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})

	m = typeText(m, "X")
	if len(events) != 1 || events[0].Change == nil {
		t.Fatalf("typed edit: got %+v, want one event with a change", events)
	}
	if got := events[0].Change.Source; got != buffer.ChangeSourceLocal {
		t.Fatalf("typed change source: got %v, want %v", got, buffer.ChangeSourceLocal)
	}

	m, _ = m.Update(ValueMsg{Value: "reloaded", Source: SourceExternal})
	last := events[len(events)-1]
	if last.Change == nil || last.Change.Source != buffer.ChangeSourceRemote {
		t.Fatalf("external value change: got %+v, want remote change", last.Change)
	}
	if last.Source != SourceExternal {
		t.Fatalf("external value source: got %v, want %v", last.Source, SourceExternal)
	}

	n := len(events)
	_, _ = m.Update(SelectionMsg{Range: selection.Between(0, 2)})
	if len(events) != n+1 || events[n].Change != nil {
		t.Fatalf("selection-only event carried a change")
	}
}
