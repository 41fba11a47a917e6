// Package version pins the release string reported by --version.
package version

// Version is set at build time via
// -ldflags "-X github.com/PyEED/aligner/internal/version.Version=...".
var Version = "0.3.0"
