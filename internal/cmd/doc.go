// Package cmd provides the command-line interface implementation for lovepack.
//
// This package contains all the subcommand implementations for the lovepack CLI tool.
// It uses the Cobra library for command structure and Fang for styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator, persistent --config and --verbose flags
//   - build: Write the game archive
//   - list: Show which files would be archived and, optionally, which were excluded
//   - rules: Print the effective exclusion rules as YAML
//
// Each command is implemented as a separate file with its own constructor function
// that returns a *cobra.Command.
package cmd
