// Package cmd holds mcpreg build metadata. The variables are overridden at
// link time, e.g. -ldflags "-X github.com/thoreinstein/mcpreg/cmd.Version=v1.2.0".
package cmd

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// shortCommitLen is how much of the commit SHA Summary shows.
const shortCommitLen = 7

// Summary is the one-line form used by --version: the version alone for
// local builds, otherwise version, short commit and build date.
func Summary() string {
	if Commit == "none" || Commit == "" {
		return Version
	}
	commit := Commit
	if len(commit) > shortCommitLen {
		commit = commit[:shortCommitLen]
	}
	return fmt.Sprintf("%s (%s, built %s)", Version, commit, Date)
}
