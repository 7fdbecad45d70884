// Package buildtime tells the version plx is built as.
//
// VERSION and revision are overwritten by the release build.
package buildtime

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

//go:embed revision
var revision string

func init() {
	version = strings.TrimSpace(version)
	revision = strings.TrimSpace(revision)
}

// Version is the semver of this build, without "v".
func Version() string {
	return strings.TrimPrefix(version, "v")
}

func Revision() string {
	return revision
}

// String renders the version with its commit, like "0.1.0 (commit: abc123)".
func String() string {
	return Version() + " (commit: " + revision + ")"
}

// UserAgent is sent by plx on each request, like "plx/0.1.0".
func UserAgent() string {
	return "plx/" + Version()
}
