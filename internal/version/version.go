// Package version provides build version information.
package version

import (
	"fmt"
	"runtime"
)

// Build information set by ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns a formatted version string.
func Info() string {
	return fmt.Sprintf("moltbook %s (%s) built on %s with %s",
		Version, Commit, Date, runtime.Version())
}

// UserAgent returns the User-Agent sent to the API.
func UserAgent() string {
	return "moltbook-cli/" + Version
}
