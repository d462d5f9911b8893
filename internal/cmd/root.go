package cmd

import (
	"os"

	"github.com/dendrascience/lovepack/internal/config"
	"github.com/dendrascience/lovepack/version"
	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
}

// NewRootCmd creates and returns the root cobra command for the lovepack CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "lovepack",
		Short: "lovepack - package a LÖVE game tree into a distributable archive",
		Long: `lovepack walks a game project directory and writes a .love archive
(ZIP, deflate) containing every file that is not excluded.

Excluded by default:
  - top-level directories: .git, dist, screenshots, .github
  - paths: docs/background
  - file patterns: *.love, *.psd, *.xcf

The archive destination comes from --output or the LOVE_FILE environment
variable. Exclusions can be replaced with a YAML file passed via --config.`,
		Version:      version.GetFullVersion(),
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")

	groupPackaging := "packaging"
	groupUtilities := "utilities"

	rootCmd.AddGroup(&cobra.Group{
		ID:    groupPackaging,
		Title: "Packaging",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	buildCmd := NewBuildCmd(flags)
	listCmd := NewListCmd(flags)
	rulesCmd := NewRulesCmd(flags)

	buildCmd.GroupID = groupPackaging
	listCmd.GroupID = groupUtilities
	rulesCmd.GroupID = groupUtilities

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rulesCmd)

	return rootCmd
}

// resolveConfig applies, in increasing precedence, defaults, the config file,
// LOVE_FILE, the ROOT argument and the --output flag.
func resolveConfig(flags *globalFlags, args []string, output string) (config.Config, error) {
	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	cfg = cfg.WithEnv(os.Getenv)
	if len(args) > 0 {
		cfg.Root = args[0]
	}
	if output != "" {
		cfg.Output = output
	}
	return cfg, nil
}
