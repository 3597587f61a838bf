// Package version carries build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/alexiusacademia/gocable/internal/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import "fmt"

var (
	Version   = "0.3.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2025"
)

// String renders the version line printed by `gocable version`.
func String() string {
	if GitCommit == "unknown" {
		return fmt.Sprintf("gocable v%s", Version)
	}
	return fmt.Sprintf("gocable v%s (%s, built %s)", Version, GitCommit, BuildTime)
}
