package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/codearea/buffer"
	"github.com/iw2rmb/codearea/editor"
	"github.com/iw2rmb/codearea/internal/config"
	"github.com/iw2rmb/codearea/internal/log"
	"github.com/iw2rmb/codearea/tokenize"
)

// fileChangedMsg carries the file contents after a change on disk.
type fileChangedMsg struct {
	text string
}

// savedMsg reports the outcome of a save.
type savedMsg struct {
	text string
	err  error
}

var statusStyle = lipgloss.NewStyle().Reverse(true)

// app hosts one editor bound to a file.
type app struct {
	editor editor.Model
	path   string

	// saved is the text last read from or written to disk.
	saved  string
	status string

	help     help.Model
	showHelp bool

	width, height int
}

func newApp(cfg config.Config, path, text string) app {
	return app{
		editor: editor.New(editorConfig(cfg, path, text)),
		path:   path,
		saved:  buffer.NormalizeNewlines(text),
		help:   help.New(),
	}
}

// editorConfig maps the file configuration onto the editor.
func editorConfig(cfg config.Config, path, text string) editor.Config {
	grammar := cfg.Language
	if grammar == "" {
		grammar = tokenize.GrammarForFile(path)
	}
	theme := tokenize.NewTheme(cfg.Theme)
	scroll, err := editor.ParseScrollPolicy(cfg.Scroll)
	if err != nil {
		log.Warn(log.CatConfig, "using manual scrolling", "error", err)
	}
	return editor.Config{
		Text:           text,
		Grammar:        grammar,
		ShowGutter:     cfg.ShowGutter,
		ScrollPolicy:   scroll,
		Style:          editor.ThemeStyle(theme),
		Theme:          theme,
		ReadOnly:       cfg.ReadOnly,
		AnchorInterval: cfg.AnchorInterval,
		TabString:      cfg.TabString,
		TabWidth:       cfg.TabWidth,
		HistoryLimit:   cfg.HistoryLimit,
		Clipboard:      systemClipboard{},
		Tokenizer: tokenize.NewCached(tokenize.NewChroma(),
			cfg.TokenizeCacheTTL, tokenize.DefaultCacheCleanupInterval),
	}
}

func (a *app) Init() tea.Cmd { return a.editor.Init() }

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.layout()
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			return a, tea.Quit
		case "ctrl+s":
			return a, a.save()
		case "f1":
			a.showHelp = !a.showHelp
			a.layout()
			return a, nil
		}

	case savedMsg:
		if msg.err != nil {
			a.status = msg.err.Error()
			return a, nil
		}
		a.saved = msg.text
		a.status = "saved " + time.Now().Format("15:04:05")
		return a, nil

	case fileChangedMsg:
		return a, a.reload(msg.text)
	}

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(msg)
	return a, cmd
}

// save writes the current text to disk.
func (a *app) save() tea.Cmd {
	text, path := a.editor.Value(), a.path
	return func() tea.Msg {
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil { //nolint:gosec // G306: user file keeps default permissions
			log.ErrorErr(log.CatEditor, "save failed", err, "path", path)
			return savedMsg{err: fmt.Errorf("saving %s: %w", path, err)}
		}
		log.Info(log.CatEditor, "saved", "path", path)
		return savedMsg{text: text}
	}
}

// reload replaces the editor text with the contents read from disk. Our own
// saves come back through the watcher too and are ignored.
func (a *app) reload(text string) tea.Cmd {
	text = buffer.NormalizeNewlines(text)
	if text == a.saved {
		return nil
	}
	a.saved = text
	a.status = "reloaded"
	log.Info(log.CatWatcher, "file changed on disk", "path", a.path)

	var cmd tea.Cmd
	a.editor, cmd = a.editor.Update(editor.ValueMsg{Value: text, Source: editor.SourceExternal})
	return cmd
}

func (a *app) modified() bool { return a.editor.Value() != a.saved }

// layout gives the editor every row not taken by the status line and help.
func (a *app) layout() {
	h := a.height - 1
	if a.showHelp {
		h -= lipgloss.Height(a.helpView())
	}
	a.editor = a.editor.SetSize(a.width, max(h, 0))
}

func (a *app) helpView() string {
	a.help.ShowAll = a.showHelp
	return a.help.View(a.editor.KeyMap())
}

func (a *app) View() string {
	v := a.editor.View() + "\n" + a.statusLine()
	if a.showHelp {
		v += "\n" + a.helpView()
	}
	return v
}

func (a *app) statusLine() string {
	name := a.path
	if a.modified() {
		name += " [+]"
	}
	pos := a.editor.Buffer().PosFromOffset(a.editor.Selection().Caret())
	left := fmt.Sprintf(" %s  %s", name, pos)
	right := a.status
	if right == "" {
		right = "f1 help"
	}
	right += " "
	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return statusStyle.Render(left + fmt.Sprintf("%*s", gap, "") + right)
}
