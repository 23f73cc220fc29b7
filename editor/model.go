package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codearea/buffer"
	"github.com/iw2rmb/codearea/edit"
	"github.com/iw2rmb/codearea/history"
	"github.com/iw2rmb/codearea/keyer"
	"github.com/iw2rmb/codearea/selection"
)

// Model is a Bubble Tea component that renders and edits a highlighted
// buffer.
type Model struct {
	cfg  Config
	buf  *buffer.Buffer
	hist *history.History
	keys *keyer.Keyer

	gutter *LineNumbers
	cache  *renderCache
	lines  []LineNode

	focused  bool
	viewport viewport.Model

	// source tags the pending render; lastSource is what the last render
	// consumed.
	source     RenderSource
	lastSource RenderSource
	dirty      bool

	// lastSelection is the selection left by the latest edit. Observing a
	// different one closes the open undo group.
	lastSelection selection.Range

	comp           composition
	refreshSeq     uint64
	refreshPending bool
	frame          string

	mouseDragging bool
	mouseAnchor   int
}

// composition tracks an open input method session.
type composition struct {
	active bool
	// start and n locate the preedit text in the buffer.
	start int
	n     int
	// pending is every edit made during the session, composed.
	pending    edit.Edit
	hasPending bool
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text),
		hist:     history.New(cfg.HistoryLimit),
		keys:     keyer.New(nil),
		gutter:   &LineNumbers{},
		cache:    newRenderCache(),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastSelection = m.buf.Selection()
	m.render()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Buffer returns the document state. Mutating it directly bypasses the
// history; use ValueMsg and SelectionMsg instead.
func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Value returns the document text.
func (m Model) Value() string { return m.buf.Text() }

// Selection returns the current selection.
func (m Model) Selection() selection.Range { return m.buf.Selection() }

// CanUndo reports whether an undo would change the text.
func (m Model) CanUndo() bool { return m.hist.CanUndo() }

// CanRedo reports whether a redo would change the text.
func (m Model) CanRedo() bool { return m.hist.CanRedo() }

// Lines returns the rows built by the last render.
func (m Model) Lines() []LineNode { return m.lines }

// LineNumbers returns the gutter entries.
func (m Model) LineNumbers() *LineNumbers { return m.gutter }

// RenderStats describes the last render.
func (m Model) RenderStats() RenderStats { return m.cache.stats }

// LastRenderSource returns the source consumed by the last render.
func (m Model) LastRenderSource() RenderSource { return m.lastSource }

// KeyMap returns the active bindings.
func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

// Composing reports whether an input method session is open.
func (m Model) Composing() bool { return m.comp.active }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.viewport.Width = width
	m.viewport.Height = height

	m.dirty = true
	m.render()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.dirty = true
		m.render()
	}
	return m
}

// Blur removes focus and closes the open undo group.
func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.hist.Checkpoint()
		m.dirty = true
		m.render()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// View returns the rendered viewport. While a composition is open, or its
// refresh is still pending, it returns the frame from before the session.
func (m Model) View() string {
	if m.comp.active || m.refreshPending {
		return m.frame
	}
	return m.viewport.View()
}

// changed marks the model for rendering and notifies the host.
func (m *Model) changed(textChanged bool) {
	m.dirty = true
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, textChanged, m.source))
	}
}
