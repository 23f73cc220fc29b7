// Package codearea is the root of a syntax-highlighted editor component for
// Bubble Tea. The editor lives in package editor; this package carries the
// release version.
package codearea

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// SemVer 2.0.0 without a leading "v".
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

// Version returns the release version, e.g. "0.1.0".
func Version() string { return strings.TrimSpace(embeddedVersion) }

// VersionTag returns Version as a git tag, e.g. "v0.1.0".
func VersionTag() string { return "v" + Version() }

// IsSemver reports whether v is a SemVer string without the "v" prefix.
func IsSemver(v string) bool { return semverRE.MatchString(strings.TrimSpace(v)) }

// BuildInfo returns the version line printed by --version. Empty commit or
// date fields are omitted.
func BuildInfo(commit, date string) string {
	s := VersionTag()
	if commit != "" {
		s += " (" + commit
		if date != "" {
			s += fmt.Sprintf(", built %s", date)
		}
		s += ")"
	}
	return s
}
