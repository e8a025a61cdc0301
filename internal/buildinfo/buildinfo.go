// Package buildinfo carries release metadata injected at link time.
package buildinfo

// These values are injected via -ldflags for release binaries. They
// default to empty for local/dev builds; the version command falls back
// to module build info.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
