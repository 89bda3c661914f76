package commands

import (
	"encoding/json"
	"fmt"

	"github.com/leapstack-labs/zkconfig/internal/config"
	"github.com/spf13/cobra"
)

// NewSettingsCommand creates the settings command.
func NewSettingsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Print the effective compiler settings",
		Long: `Print the zksolc settings after defaults, the config file, environment
and flags have been applied. The output is the settings object of the
standard JSON input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			project := config.GetProject(cmd.Context())
			cfg, err := project.CompilerConfig()
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(cfg.Settings, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode settings: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
