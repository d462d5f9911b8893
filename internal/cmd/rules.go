package cmd

import (
	"github.com/spf13/cobra"
)

// NewRulesCmd creates and returns the rules subcommand for the lovepack CLI.
// It prints the effective configuration, including exclusion rules, as YAML.
func NewRulesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the effective exclusion rules",
		Long: `Print the configuration a build would use, as YAML.

The output reflects the built-in defaults, the --config file and the
LOVE_FILE environment variable. It can be saved and edited to serve as
a starting point for a custom configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(flags, nil, "")
			if err != nil {
				return err
			}
			if _, err := cfg.Ruleset(); err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
