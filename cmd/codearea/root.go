package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/iw2rmb/codearea"
	"github.com/iw2rmb/codearea/internal/config"
	"github.com/iw2rmb/codearea/internal/log"
	"github.com/iw2rmb/codearea/internal/watcher"
)

func init() {
	// Query the terminal background before the program owns stdin, so the
	// OSC 11 reply is not read as key input.
	_ = lipgloss.HasDarkBackground()
}

var (
	cfgFile   string
	debugFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "codearea [file]",
	Short: "A syntax-highlighted terminal editor",
	Long: `codearea edits one file in the terminal with syntax highlighting,
line numbers, undo grouping and auto-indent.

Ctrl+S saves, Ctrl+Q quits. When watch is enabled the file is reloaded
after it changes on disk.`,
	Version: codearea.VersionTag(),
	Args:    cobra.ExactArgs(1),
	RunE:    runApp,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./.codearea.yaml or ~/.config/codearea/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write debug logs to log_file")
	addSettingFlags(rootCmd)
}

// addSettingFlags registers the flags that override config keys.
func addSettingFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("language", "l", "",
		"grammar name (default: detected from the file name)")
	cmd.Flags().String("theme", "", "chroma style name")
	cmd.Flags().Bool("no-gutter", false, "hide line numbers")
	cmd.Flags().Bool("read-only", false, "open without editing")
	cmd.Flags().Bool("no-watch", false, "do not reload the file when it changes on disk")
}

// loadConfig resolves the config file, environment and command line flags,
// in increasing priority.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	v := viper.New()
	_ = v.BindPFlag("language", cmd.Flags().Lookup("language"))
	_ = v.BindPFlag("theme", cmd.Flags().Lookup("theme"))
	_ = v.BindPFlag("read_only", cmd.Flags().Lookup("read-only"))

	cfg, _, err := config.Load(v, cfgFile)
	if err != nil {
		return config.Config{}, err
	}

	// Negated flags.
	if noGutter, _ := cmd.Flags().GetBool("no-gutter"); noGutter {
		cfg.ShowGutter = false
	}
	if noWatch, _ := cmd.Flags().GetBool("no-watch"); noWatch {
		cfg.Watch = false
	}
	return cfg, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if debugFlag || os.Getenv(config.EnvPrefix+"_DEBUG") != "" {
		cleanup, err := log.InitWithTeaLog(cfg.LogFile, "codearea")
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()
		if lvl, ok := log.ParseLevel(os.Getenv(config.EnvPrefix + "_LOG_LEVEL")); ok {
			log.SetMinLevel(lvl)
		}
		log.Info(log.CatConfig, "codearea starting", "version", cmd.Root().Version, "logPath", cfg.LogFile)
	}

	path := args[0]
	text, err := readFile(path)
	if err != nil {
		return err
	}

	model := newApp(cfg, path, text)
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if cfg.Watch {
		wcfg := watcher.DefaultConfig(path)
		if cfg.WatchDebounce > 0 {
			wcfg.DebounceDur = cfg.WatchDebounce
		}
		w, err := watcher.New(wcfg)
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		changes, err := w.Start()
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer func() { _ = w.Stop() }()
		go forwardChanges(p, path, changes)
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// readFile returns the file contents, or "" when the file does not exist
// yet.
func readFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is the file the user asked to edit
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// forwardChanges reads the file after every change signal and hands the
// contents to the program.
func forwardChanges(p *tea.Program, path string, changes <-chan struct{}) {
	for range changes {
		text, err := readFile(path)
		if err != nil {
			log.ErrorErr(log.CatWatcher, "reload failed", err, "path", path)
			continue
		}
		p.Send(fileChangedMsg{text: text})
	}
}
