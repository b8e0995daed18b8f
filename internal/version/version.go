// Package version provides build-time version information.
package version

import (
	"fmt"
	"runtime"
)

// These variables are set at build time using -ldflags
var (
	// Version is the semantic version
	Version = "0.1.0"

	// BuildTime is the UTC time when the binary was built
	BuildTime = "unknown"

	// GitCommit is the git commit hash
	GitCommit = "unknown"
)

// String formats the build information for the version command and the startup log.
func String() string {
	return fmt.Sprintf("livegauge %s (commit %s, built %s, %s %s/%s)",
		Version, short(GitCommit), BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func short(commit string) string {
	if len(commit) > 12 {
		return commit[:12]
	}
	return commit
}
