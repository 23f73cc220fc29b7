package editor

// ViewportState is a stable host-facing snapshot of editor camera state.
type ViewportState struct {
	// TopRow is the document row rendered at viewport screen row 0.
	TopRow int
	// VisibleRows is the number of content rows available for rendering.
	VisibleRows int
	// GutterWidth is the number of cells left of the text.
	GutterWidth int
}

// ViewportState returns the current host-facing viewport state.
func (m Model) ViewportState() ViewportState {
	st := ViewportState{
		TopRow:      max(m.viewport.YOffset, 0),
		VisibleRows: m.visibleRowCount(),
	}
	if m.cfg.ShowGutter {
		st.GutterWidth = m.gutter.Width()
	}
	return st
}

// ScreenToOffset maps viewport-local screen coordinates to a document
// offset. Coordinates outside the content clamp to the nearest row or column.
func (m Model) ScreenToOffset(x, y int) int {
	return m.screenToOffset(x, y)
}

func (m Model) visibleRowCount() int {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h < 0 {
		return 0
	}
	return h
}
