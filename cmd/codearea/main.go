// Command codearea opens a file in a syntax-highlighted terminal editor.
package main

import (
	"os"

	"github.com/iw2rmb/codearea"
)

// Build information injected via ldflags at build time.
var (
	commit = ""
	date   = ""
)

func main() {
	rootCmd.Version = codearea.BuildInfo(commit, date)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
