// Package version contains version information.
package version

import "runtime/debug"

// Version information for datecalc, injected via ldflags for release builds.
var (
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the version string. Development builds installed with
// `go install module@version` report the module version instead of "dev".
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// GetFullVersion returns version with build metadata
func GetFullVersion() string {
	return GetVersion() + " (build: " + BuildDate + ", commit: " + GitCommit + ")"
}
