// Package buildinfo carries the version stamp set at build time via
// -ldflags "-X cubedrop/internal/buildinfo.Version=...".
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full identifier logged at startup.
func String() string {
	return fmt.Sprintf("cubedrop %s (commit %s, built %s)", Version, Commit, Date)
}
