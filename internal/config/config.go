// Package config provides configuration types, defaults, loading and
// persistence for codearea.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/iw2rmb/codearea/internal/log"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix prefixes environment variable overrides, e.g. CODEAREA_THEME.
const EnvPrefix = "CODEAREA"

// Config holds all configuration options for codearea.
type Config struct {
	Language       string `mapstructure:"language" yaml:"language"`               // grammar; empty means detect from file name
	Theme          string `mapstructure:"theme" yaml:"theme"`                     // chroma style name
	ShowGutter     bool   `mapstructure:"show_gutter" yaml:"show_gutter"`         // line number column
	AnchorInterval int    `mapstructure:"anchor_interval" yaml:"anchor_interval"` // rows between keyed lines
	TabString      string `mapstructure:"tab_string" yaml:"tab_string"`           // inserted by Tab and auto-indent
	TabWidth       int    `mapstructure:"tab_width" yaml:"tab_width"`             // cells a '\t' renders as
	HistoryLimit   int    `mapstructure:"history_limit" yaml:"history_limit"`     // undo groups kept
	ReadOnly       bool   `mapstructure:"read_only" yaml:"read_only"`
	Scroll         string `mapstructure:"scroll" yaml:"scroll"` // "manual" or "follow"

	// Watch reloads the file when it changes on disk.
	Watch         bool          `mapstructure:"watch" yaml:"watch"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce" yaml:"watch_debounce"`

	TokenizeCacheTTL time.Duration `mapstructure:"tokenize_cache_ttl" yaml:"tokenize_cache_ttl"`

	// LogFile receives debug logs when debugging is enabled.
	LogFile string `mapstructure:"log_file" yaml:"log_file"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Language:         "",
		Theme:            "monokai",
		ShowGutter:       true,
		AnchorInterval:   10,
		TabString:        "  ",
		TabWidth:         4,
		HistoryLimit:     1000,
		ReadOnly:         false,
		Scroll:           "manual",
		Watch:            true,
		WatchDebounce:    100 * time.Millisecond,
		TokenizeCacheTTL: 2 * time.Minute,
		LogFile:          "debug.log",
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.AnchorInterval <= 0:
		return fmt.Errorf("%w: anchor_interval must be positive, got %d", ErrInvalid, c.AnchorInterval)
	case c.TabWidth <= 0:
		return fmt.Errorf("%w: tab_width must be positive, got %d", ErrInvalid, c.TabWidth)
	case c.TabString == "":
		return fmt.Errorf("%w: tab_string must not be empty", ErrInvalid)
	case strings.ContainsAny(c.TabString, "\r\n"):
		return fmt.Errorf("%w: tab_string must not contain line breaks", ErrInvalid)
	case c.Scroll != "manual" && c.Scroll != "follow":
		return fmt.Errorf("%w: scroll must be manual or follow, got %q", ErrInvalid, c.Scroll)
	case c.HistoryLimit < 0:
		return fmt.Errorf("%w: history_limit must not be negative, got %d", ErrInvalid, c.HistoryLimit)
	case c.WatchDebounce < 0:
		return fmt.Errorf("%w: watch_debounce must not be negative, got %s", ErrInvalid, c.WatchDebounce)
	case c.TokenizeCacheTTL < 0:
		return fmt.Errorf("%w: tokenize_cache_ttl must not be negative, got %s", ErrInvalid, c.TokenizeCacheTTL)
	}
	return nil
}

// SetDefaults registers every key of Defaults on v, which also makes the
// keys visible to environment overrides.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("language", d.Language)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("show_gutter", d.ShowGutter)
	v.SetDefault("anchor_interval", d.AnchorInterval)
	v.SetDefault("tab_string", d.TabString)
	v.SetDefault("tab_width", d.TabWidth)
	v.SetDefault("history_limit", d.HistoryLimit)
	v.SetDefault("read_only", d.ReadOnly)
	v.SetDefault("scroll", d.Scroll)
	v.SetDefault("watch", d.Watch)
	v.SetDefault("watch_debounce", d.WatchDebounce)
	v.SetDefault("tokenize_cache_ttl", d.TokenizeCacheTTL)
	v.SetDefault("log_file", d.LogFile)
}

// SearchPaths returns the config files tried, in order, when no file is
// given explicitly:
// 1. ./.codearea.yaml
// 2. ~/.config/codearea/config.yaml
func SearchPaths() []string {
	paths := []string{".codearea.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "codearea", "config.yaml"))
	}
	return paths
}

// Load reads configuration into v from cfgFile, or from the first existing
// file in SearchPaths when cfgFile is empty. A missing search-path file is
// not an error; a missing explicit file is. It returns the file used, if
// any.
func Load(v *viper.Viper, cfgFile string) (Config, string, error) {
	return load(v, cfgFile, SearchPaths())
}

func load(v *viper.Viper, cfgFile string, search []string) (Config, string, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := cfgFile
	if path == "" {
		for _, p := range search {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			log.ErrorErr(log.CatConfig, "Failed to read config file", err, "path", path)
			return Config{}, "", fmt.Errorf("reading config %s: %w", path, err)
		}
		log.Debug(log.CatConfig, "Loaded config", "path", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}
