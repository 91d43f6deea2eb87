// Package version exposes the build identity stamped into the binary.
package version

import "runtime/debug"

// Overridden at build time:
//
//	go build -ldflags "-X 'vibecheck/internal/core/version.version=v0.2.0' \
//	  -X 'vibecheck/internal/core/version.commit=1a2b3c4' \
//	  -X 'vibecheck/internal/core/version.date=2026-08-25'"
var (
	version = "dev"
	commit  = ""
	date    = "unknown"
)

// BuildInfo is the identity block served by the version endpoint.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info reports the stamped build identity. When no commit was stamped it
// falls back to the vcs revision Go embeds into module builds.
func Info() BuildInfo {
	return BuildInfo{
		Service: "vibecheck-api",
		Version: version,
		Commit:  commitOrVCS(),
		Date:    date,
	}
}

func commitOrVCS() string {
	if commit != "" {
		return commit
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "none"
}
