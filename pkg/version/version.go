// Package version provides build version information for bix.
//
// The variables are set at link time:
//
//	go build -ldflags "-X github.com/coral-mesh/bix/pkg/version.Version=v0.1.0"
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version (set by build flags)
	Version = "dev"

	// GitCommit is the git commit hash (set by build flags)
	GitCommit = "unknown"

	// BuildDate is the build timestamp (set by build flags)
	BuildDate = "unknown"

	// GoVersion is the Go version used to build
	GoVersion = runtime.Version()
)

// Short returns the one-line form used by --version.
func Short() string {
	return fmt.Sprintf("%s (%s, %s)", Version, GitCommit, GoVersion)
}
