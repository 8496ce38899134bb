package apetag

import "runtime"

// Version is the semantic version of the apetag library.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// VersionInfo contains detailed version information.
type VersionInfo struct {
	// Version is the semantic version (e.g., "0.1.0")
	Version string
	// GitCommit is the git commit hash (set via ldflags at build time)
	GitCommit string
	// BuildTime is the build timestamp (set via ldflags at build time)
	BuildTime string
	// GoVersion is the Go version used to build
	GoVersion string
}

// GetVersionInfo returns detailed version information.
//
// GitCommit and BuildTime are populated at build time via -ldflags:
//
//	go build -ldflags="-X github.com/simonhull/apetag.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/apetag.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/apetag
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// Variables populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
