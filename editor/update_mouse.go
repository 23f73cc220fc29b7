package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/codearea/selection"
)

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if isWheelMouse(msg) {
		if m.cfg.ScrollPolicy.allowsWheel() {
			m.viewport, cmd = m.viewport.Update(msg)
		}
		return m, cmd
	}

	if !m.focused {
		return m, cmd
	}

	// Only handle selection/cursor changes for left button interactions.
	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, cmd
		}
		if !m.mouseInBounds(msg.X, msg.Y) {
			return m, cmd
		}

		off := m.screenToOffset(msg.X, msg.Y)
		if msg.Shift {
			m.mouseAnchor = m.buf.Selection().Anchor()
			m.setSelection(selection.Between(m.mouseAnchor, off))
		} else {
			m.mouseAnchor = off
			m.setSelection(selection.Caret(off))
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m, cmd
		}

		x, y := m.clampMouseToBounds(msg.X, msg.Y)
		m.setSelection(selection.Between(m.mouseAnchor, m.screenToOffset(x, y)))

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}

	return m, cmd
}

func (m *Model) setSelection(r selection.Range) {
	if m.buf.SetSelection(r) {
		m.noteSelection()
		m.changed(false)
	}
}

// screenToOffset maps a cell inside the viewport to a document offset.
func (m Model) screenToOffset(x, y int) int {
	row := clampInt(m.viewport.YOffset+y, 0, m.buf.LineCount()-1)
	if m.cfg.ShowGutter {
		x -= m.gutter.Width()
	}
	if x < 0 {
		x = 0
	}
	return m.buf.LineStart(row) + colAtCell(m.buf.Line(row), x, m.cfg.TabWidth)
}

func isWheelMouse(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp ||
			msg.Button == tea.MouseButtonWheelDown ||
			msg.Button == tea.MouseButtonWheelLeft ||
			msg.Button == tea.MouseButtonWheelRight)
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.viewport.Width <= 0 || m.viewport.Height <= 0 {
		return false
	}
	return x >= 0 && x < m.viewport.Width && y >= 0 && y < m.viewport.Height
}

func (m Model) clampMouseToBounds(x, y int) (int, int) {
	if m.viewport.Width > 0 {
		x = clampInt(x, 0, m.viewport.Width-1)
	}
	if m.viewport.Height > 0 {
		y = clampInt(y, 0, m.viewport.Height-1)
	}
	return x, y
}
