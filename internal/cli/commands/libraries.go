package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/leapstack-labs/zkconfig/internal/config"
	"github.com/spf13/cobra"
)

// NewLibrariesCommand creates the libraries command.
func NewLibrariesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "libraries",
		Short: "List configured library addresses",
		Long: `List the deployed library addresses the compiler links against,
from the config file and --library flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			project := config.GetProject(cmd.Context())
			libs := project.EffectiveSettings().Libraries.List()

			if len(libs) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No libraries configured.")
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"File", "Library", "Address"})
			for _, lib := range libs {
				t.AppendRow(table.Row{lib.File, lib.Name, lib.Address.Hex()})
			}
			t.Render()
			return nil
		},
	}
}
