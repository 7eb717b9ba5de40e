// Package buildinfo carries version metadata injected at build time.
package buildinfo

var (
	// Version is the release version, set via -ldflags at build time.
	Version = "dev"
	// Build is the commit hash or build identifier.
	Build = "unknown"
)
