// Package versions holds the build information of the registry binaries.
package versions

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"
)

// Build information, overridden at link time with
// -ldflags "-X github.com/stacklok/descriptor-registry-server/internal/versions.Version=..."
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// VersionInfo describes the running binary
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetVersionInfo returns the build information of the running binary
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   NormalizeVersion(Version),
		Commit:    Commit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// NormalizeVersion returns a semantic version without the leading "v".
// Values that are not semantic versions, such as "dev", are returned unchanged.
func NormalizeVersion(version string) string {
	parsed, err := semver.NewVersion(version)
	if err != nil {
		return version
	}
	return parsed.String()
}

// IsRelease reports whether version is a semantic version without a prerelease suffix
func IsRelease(version string) bool {
	parsed, err := semver.StrictNewVersion(NormalizeVersion(version))
	if err != nil {
		return false
	}
	return parsed.Prerelease() == ""
}
