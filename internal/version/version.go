// Package version carries build identification, overridable at link time:
//
//	go build -ldflags "-X FreehandBoard/internal/version.Version=v0.3.0 -X FreehandBoard/internal/version.Commit=abc123"
package version

import "fmt"

var (
	Version = "0.1.0-dev"
	Commit  = ""
)

// String returns the version with the commit appended when known.
func String() string {
	if Commit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, Commit)
}
