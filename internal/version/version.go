// Package version carries the build stamp shown by `rcb --version`.
package version

import "fmt"

// Overridden at release time via -ldflags; plant installs are tracked by
// commit, not semver.
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String renders the stamp for the root command.
func String() string {
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("rcb dev (commit: %s, built: %s)", commit, BuildTime)
}
