// Package buildinfo carries version metadata stamped in at link time.
package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/katalvlaran/trilath/internal/buildinfo.Version=...".
var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"
	// Commit is the short git revision.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the one-line version banner printed by `trilath version`.
func String() string {
	return fmt.Sprintf("trilath %s (commit=%s, date=%s)", Version, Commit, Date)
}
