package editor

// followCaret scrolls the least distance that brings the caret row into
// view.
func (m *Model) followCaret() {
	h := m.visibleRowCount()
	if h <= 0 {
		return
	}
	row := m.buf.PosFromOffset(m.buf.Caret()).Row

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}
