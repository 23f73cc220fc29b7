package editor

import (
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/iw2rmb/codearea/internal/log"
	"github.com/iw2rmb/codearea/keyer"
	"github.com/iw2rmb/codearea/token"
)

// RenderStats describes the last render.
type RenderStats struct {
	Rows int
	// Hits and Misses count cacheable rows served from and added to the
	// row cache.
	Hits   int
	Misses int
	// Live counts rows holding the caret or part of the selection. They are
	// never cached.
	Live int
}

// rowCacheKey addresses a rendered row: anchor rows by key, the rest by
// row index.
type rowCacheKey struct {
	key keyer.Key
	row int
}

type rowCacheEntry struct {
	sig uint64
	out string
}

type renderCache struct {
	rows  map[rowCacheKey]rowCacheEntry
	stats RenderStats
}

func newRenderCache() *renderCache {
	return &renderCache{rows: make(map[rowCacheKey]rowCacheEntry)}
}

func (c *renderCache) reset() { clear(c.rows) }

func cacheKeyFor(n LineNode) rowCacheKey {
	if n.Anchored() {
		return rowCacheKey{key: n.Key, row: -1}
	}
	return rowCacheKey{row: n.Row}
}

// lineSignature hashes the tags, aliases and text of a row.
func lineSignature(line token.Line) uint64 {
	d := xxhash.New()
	token.Walk(line, func(leaf string, chain []token.Token) {
		for _, c := range chain {
			_, _ = d.WriteString(c.Tag)
			for _, a := range c.Aliases {
				_, _ = d.WriteString("\x1f")
				_, _ = d.WriteString(a)
			}
			_, _ = d.WriteString("\x1e")
		}
		_, _ = d.WriteString(leaf)
		_, _ = d.WriteString("\x1d")
	})
	return d.Sum64()
}

// render rebuilds the viewport content and consumes the render source.
// Nothing is drawn while a composition is open or its refresh is pending.
func (m *Model) render() {
	if m.comp.active || m.refreshPending {
		return
	}
	src := m.source
	m.source = SourceNone
	m.dirty = false

	if src == SourceRefresh {
		m.cache.reset()
	}
	m.viewport.SetContent(m.renderContent())
	m.lastSource = src
	m.followCaret()

	st := m.cache.stats
	log.Debug(log.CatRender, "render",
		"source", src, "rows", st.Rows, "hits", st.Hits, "misses", st.Misses, "live", st.Live)
}

func (m *Model) renderContent() string {
	lines := m.buildLines()
	m.lines = lines
	if m.gutter.Sync(len(lines)) {
		log.Debug(log.CatRender, "gutter resized", "rows", len(lines))
	}

	sel := m.buf.Selection()
	caretOff := m.buf.Caret()
	caretRow := m.buf.PosFromOffset(caretOff).Row

	out := make([]string, len(lines))
	next := make(map[rowCacheKey]rowCacheEntry, len(lines))
	stats := RenderStats{Rows: len(lines)}
	for i, n := range lines {
		caret := -1
		if m.focused && n.Row == caretRow {
			caret = caretOff - n.Offset
		}
		span := selectionSpan(sel, n)

		var row string
		if caret >= 0 || !span.empty() {
			row = renderLine(m.cfg.Theme, m.cfg.Style, n.Line, m.cfg.TabWidth, span, caret)
			stats.Live++
		} else {
			ck := cacheKeyFor(n)
			sig := lineSignature(n.Line)
			if e, ok := m.cache.rows[ck]; ok && e.sig == sig {
				row = e.out
				stats.Hits++
			} else {
				row = renderLine(m.cfg.Theme, m.cfg.Style, n.Line, m.cfg.TabWidth, lineSpan{}, -1)
				stats.Misses++
			}
			next[ck] = rowCacheEntry{sig: sig, out: row}
		}

		if m.cfg.ShowGutter {
			row = m.gutter.cell(m.cfg.Style, n.Row, m.focused && n.Row == caretRow) + row
		}
		out[i] = row
	}

	m.cache.rows = next
	m.cache.stats = stats
	return strings.Join(out, "\n")
}
