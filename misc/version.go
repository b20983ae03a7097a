// Package misc keeps build metadata helpers shared across commands.
package misc

import "runtime/debug"

var (
	appName = "restyle"
	version = "0.1.0"
	gitHash = "unknown"
)

// GetAppName returns program name to be used in logs and messages.
func GetAppName() string {
	return appName
}

// GetVersion returns program version set at build time.
func GetVersion() string {
	return version
}

// GetGitHash returns vcs revision recorded in the build info if available.
func GetGitHash() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return gitHash
}
