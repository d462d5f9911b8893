// Package main provides the lovepack command-line interface.
//
// lovepack packages a LÖVE game project into a distributable .love archive.
// It walks the project tree once, drops excluded directories, paths and file
// patterns, and writes everything else into a ZIP archive using deflate
// compression. Member names always use forward slashes.
//
// The main binary supports multiple subcommands:
//   - build: Write the archive to --output or $LOVE_FILE
//   - list: Dry run, print the members a build would write
//   - rules: Print the effective exclusion rules as YAML
//
// For CI pipelines, cmd/buildlove offers a flagless entrypoint that packages
// the current directory into $LOVE_FILE.
package main
