// Package version holds build metadata injected via -ldflags.
package version

import "runtime"

var (
	// GitRelease is the release tag or branch name.
	GitRelease = "dev"

	// GitCommit is the commit hash the binary was built from.
	GitCommit = "unknown"

	// GitCommitDate is the commit date.
	GitCommitDate = "unknown"
)

// GoInfo is the Go runtime version used for the build.
var GoInfo = runtime.Version()
