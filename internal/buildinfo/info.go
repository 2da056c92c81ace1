// Package buildinfo carries version metadata injected at build time.
package buildinfo

// Set via -ldflags "-X github.com/wydatki-dev/wydatki/internal/buildinfo.Version=..." at build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
