// Package version provides version information for the netgen tool.
//
// Overview:
//   - Responsibility: Build metadata (version, commit, build time)
//   - Key Types: Version variables and formatting functions
//   - Concurrency Model: Read-only after link time, safe for concurrent use
//   - Error Semantics: No errors
//   - Performance Notes: String formatting only
//
// Usage:
//
//	go build -ldflags "-X go.eggybyte.com/netgen/internal/version.Version=v0.2.0" ./cmd/netgen
//	fmt.Println(version.String())
package version

import (
	"fmt"
	"runtime"
)

// Version is the release version. Overridden with -ldflags at release time.
var Version = "v0.1.0-dev"

// Commit is the git commit hash. Overridden with -ldflags at release time.
var Commit = "unknown"

// BuildTime is the build timestamp in RFC3339 format. Overridden with
// -ldflags at release time.
var BuildTime = "unknown"

// String returns the one-line version string in the format:
// netgen version v0.1.0 (commit 4a9b2c1, built 2026-10-16T12:10:00Z)
func String() string {
	return fmt.Sprintf("netgen version %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// Full returns String followed by the Go toolchain and platform.
func Full() string {
	return fmt.Sprintf("%s\ngo version %s (%s/%s)",
		String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
