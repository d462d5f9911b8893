package cmd

import (
	"fmt"

	"github.com/dendrascience/lovepack/internal/logging"
	"github.com/dendrascience/lovepack/packer"
	"github.com/dendrascience/lovepack/rules"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewListCmd creates and returns the list subcommand for the lovepack CLI.
// It performs a dry run and prints the archive members that would be written.
func NewListCmd(flags *globalFlags) *cobra.Command {
	var showExcluded bool

	cmd := &cobra.Command{
		Use:   "list [ROOT]",
		Short: "List the files that would be archived",
		Long: `Walk the game tree and print the archive member names that a build
would write, followed by a total. Nothing is written to disk.

With --excluded, every excluded directory or file is printed as well,
together with the rule that excluded it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags, args, showExcluded)
		},
	}

	cmd.Flags().BoolVarP(&showExcluded, "excluded", "x", false, "Also print excluded paths and the matching rule")

	return cmd
}

type excludedPath struct {
	rel    string
	reason rules.Reason
}

func runList(cmd *cobra.Command, flags *globalFlags, args []string, showExcluded bool) error {
	cfg, err := resolveConfig(flags, args, "")
	if err != nil {
		return err
	}
	rs, err := cfg.Ruleset()
	if err != nil {
		return err
	}

	logger := logging.New(flags.verbose)
	defer logger.Sync()

	var excluded []excludedPath
	archiver := packer.New(cfg.Root, rs,
		packer.WithLogger(logger),
		packer.WithSkipHook(func(rel string, reason rules.Reason) {
			excluded = append(excluded, excludedPath{rel: rel, reason: reason})
		}),
	)

	plan, err := archiver.Collect(cmd.Context(), cfg.Output)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, entry := range plan.Entries {
		fmt.Fprintf(out, "  %s\n", entry.Name)
	}
	if showExcluded {
		red := color.New(color.FgRed)
		for _, ex := range excluded {
			red.Fprintf(out, "- %s", ex.rel)
			fmt.Fprintf(out, " (%s)\n", ex.reason)
		}
	}

	fmt.Fprintf(out, "Total files: %d\n", len(plan.Entries))
	if showExcluded {
		fmt.Fprintf(out, "Excluded: %d\n", plan.Skipped)
	}
	return nil
}
