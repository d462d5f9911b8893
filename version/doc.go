// Package version provides version information and build metadata for lovepack.
//
// Version information is resolved from compile-time variables (Version, Commit,
// Date) set via -ldflags, falling back to debug.ReadBuildInfo() and finally to
// development defaults:
//
//	-ldflags "-X github.com/dendrascience/lovepack/version.Version=v1.0.0 -X github.com/dendrascience/lovepack/version.Commit=abc123"
package version
