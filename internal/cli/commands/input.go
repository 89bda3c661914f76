package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/zkconfig/internal/config"
	"github.com/leapstack-labs/zkconfig/internal/sources"
	"github.com/leapstack-labs/zkconfig/pkg/zksolc"
	"github.com/spf13/cobra"
)

// ErrNoEntries is returned when input is run without entry files.
var ErrNoEntries = errors.New("no entry files: pass them as arguments or set sources in the config file")

// NewInputCommand creates the input command.
func NewInputCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "input [entry.sol...]",
		Short: "Generate standard JSON compiler input",
		Long: `Collect the entry files and everything they import, and write the
standard JSON input for zksolc.

Sources keep their collection order: entry files first, in the order given,
then imported files as they are discovered. Without arguments the sources
listed in the config file are used.`,
		Example: `  # Entry files from zkconfig.yaml
  zkconfig input

  # Explicit entry files, written to a file
  zkconfig input contracts/Token.sol contracts/Vault.sol -o build/input.json

  # Link a library while generating
  zkconfig input --library contracts/Math.sol:Math:0x00000000000000000000000000000000000000aa`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInput(cmd, args, out)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write compiler input to this file instead of stdout")

	return cmd
}

func runInput(cmd *cobra.Command, entries []string, out string) error {
	ctx := cmd.Context()
	logger := config.GetLogger(ctx)
	project := config.GetProject(ctx)

	cfg, err := project.CompilerConfig()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		entries = project.Sources
	}
	if len(entries) == 0 {
		return ErrNoEntries
	}

	collector := sources.NewCollector(project.BaseDir, cfg.Settings.Remappings, logger)
	srcs, err := collector.Collect(ctx, entries...)
	if err != nil {
		return err
	}

	input := zksolc.NewStandardJSONInput(srcs, cfg.Settings)
	data, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode compiler input: %w", err)
	}
	data = append(data, '\n')

	if out == "" {
		out = project.Output
	}
	dest := "stdout"
	if out == "" {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
	} else {
		if err := os.MkdirAll(filepath.Dir(out), 0750); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", out, err)
		}
		if err := os.WriteFile(out, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", out, err)
		}
		dest = out
	}

	// A run with missing libraries is a discovery pass; its output is not final.
	if !cfg.Settings.AreLibrariesMissing {
		logger.Info("compiler input written",
			"sources", len(srcs),
			"output", dest,
			"compiler", cfg.CompilerPath,
		)
	}
	return nil
}
