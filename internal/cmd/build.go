package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dendrascience/lovepack/internal/logging"
	"github.com/dendrascience/lovepack/packer"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewBuildCmd creates and returns the build subcommand for the lovepack CLI.
// It packages a game tree into a .love archive.
func NewBuildCmd(flags *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build [ROOT]",
		Short: "Package a game tree into a .love archive",
		Long: `Package a game directory tree into a ZIP archive with deflate compression.

ROOT defaults to the current directory. The destination is taken from
--output, falling back to the LOVE_FILE environment variable. Its parent
directory is created when missing and any existing file is replaced.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, flags, args, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination archive path (default $LOVE_FILE)")

	return cmd
}

func runBuild(cmd *cobra.Command, flags *globalFlags, args []string, output string) error {
	cfg, err := resolveConfig(flags, args, output)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	rs, err := cfg.Ruleset()
	if err != nil {
		return err
	}

	logger := logging.New(flags.verbose)
	defer logger.Sync()

	if pathsOverlap(cfg.Root, cfg.Output) {
		logger.Warn("output archive lies inside the packaged tree; it will not be added to itself",
			zap.String("root", cfg.Root), zap.String("output", cfg.Output))
	}

	archiver := packer.New(cfg.Root, rs, packer.WithLogger(logger))
	res, err := archiver.Archive(cmd.Context(), cfg.Output)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	color.New(color.FgGreen, color.Bold).Fprintf(out, "Packed %s", cfg.Output)
	fmt.Fprintf(out, " (%d files, %d bytes, %d excluded)\n", res.Files, res.Bytes, res.Skipped)
	return nil
}

// pathsOverlap reports whether either path contains the other.
func pathsOverlap(path1, path2 string) bool {
	abs1, err := filepath.Abs(path1)
	if err != nil {
		abs1 = filepath.Clean(path1)
	}
	abs2, err := filepath.Abs(path2)
	if err != nil {
		abs2 = filepath.Clean(path2)
	}
	return isWithin(abs1, abs2) || isWithin(abs2, abs1)
}

func isWithin(child, parent string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
