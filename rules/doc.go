// Package rules implements the exclusion ruleset used when packaging a game tree.
//
// A Ruleset combines four kinds of rules, evaluated in order against a path
// relative to the packaging root:
//
//   - Dirs: directory names excluded when they are the first path segment
//   - Paths: relative path prefixes, matched segment-wise
//   - Globs: shell-style patterns matched against the entry name only
//   - Ignore: optional gitignore-style lines
//
// Paths are always compared with forward slashes. A Ruleset is immutable once
// built and is safe for concurrent use.
package rules
