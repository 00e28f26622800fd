// Package buildinfo carries version data stamped in with -ldflags, e.g.
//
//	go build -ldflags "-X sparkbench/internal/buildinfo.Version=v0.3.0"
package buildinfo

import "fmt"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title and reports.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full identifier printed by -version.
func String() string {
	return fmt.Sprintf("sparkbench %s (commit %s, built %s)", Version, Commit, Date)
}
