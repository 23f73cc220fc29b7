package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/codearea/internal/config"
)

var configOutput string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the effective configuration to a file",
	Long: `Write the configuration codearea would run with, after applying the
config file, CODEAREA_* environment variables and flags, as YAML.

Example:
  codearea config                         # ~/.config/codearea/config.yaml
  codearea config -o .codearea.yaml       # project config
  codearea config --theme dracula -o .codearea.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVarP(&configOutput, "output", "o", "", "file to write (default: user config path)")
	addSettingFlags(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	path := configOutput
	if path == "" {
		paths := config.SearchPaths()
		path = paths[len(paths)-1]
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	cmd.Printf("wrote %s\n", path)
	return nil
}
