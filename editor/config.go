package editor

import "github.com/iw2rmb/codearea/tokenize"

// DefaultAnchorInterval is the number of rows between keyed anchor rows.
const DefaultAnchorInterval = 10

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Grammar names the tokenizer grammar, e.g. "go" or "javascript".
	// Unknown names fall back to TokenizeOptions.DefaultGrammar.
	Grammar string

	// Rendering options.
	ShowGutter bool
	Style      Style
	// ScrollPolicy decides whether the mouse wheel may scroll away from the
	// caret.
	ScrollPolicy ScrollPolicy
	// Theme colors tokens. Nil uses tokenize.DefaultTheme.
	Theme *tokenize.Theme

	// ReadOnly ignores every key that would change the text. Undo and redo
	// are ignored too; caret movement still works.
	ReadOnly bool

	// AnchorInterval keys every Nth row for the render cache.
	// Zero means DefaultAnchorInterval.
	AnchorInterval int

	// TabString is inserted by Tab and by auto-indent after an open bracket.
	TabString string
	// TabWidth is the cell width of a rendered '\t'.
	TabWidth int

	// Forwarded to history.New.
	HistoryLimit int

	// Tokenizer produces the token tree. Nil uses a cached chroma tokenizer.
	Tokenizer       tokenize.Tokenizer
	TokenizeOptions tokenize.Options

	// KeyMap binds keys to actions. A KeyMap without bindings uses
	// DefaultKeyMap.
	KeyMap KeyMap
	// Clipboard backs the Copy, Cut and Paste bindings. Nil disables them.
	Clipboard Clipboard

	// OnChange is called after every text or selection change.
	OnChange func(ChangeEvent)
}

func normalizeConfig(cfg Config) Config {
	if cfg.AnchorInterval <= 0 {
		cfg.AnchorInterval = DefaultAnchorInterval
	}
	if cfg.TabString == "" {
		cfg.TabString = "  "
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	if cfg.Tokenizer == nil {
		cfg.Tokenizer = tokenize.NewCached(tokenize.NewChroma(), tokenize.DefaultCacheTTL, tokenize.DefaultCacheCleanupInterval)
	}
	if cfg.TokenizeOptions == (tokenize.Options{}) {
		cfg.TokenizeOptions = tokenize.DefaultOptions()
	}
	if cfg.Theme == nil {
		cfg.Theme = tokenize.NewTheme(tokenize.DefaultTheme)
	}
	if len(cfg.KeyMap.Left.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	return cfg
}
