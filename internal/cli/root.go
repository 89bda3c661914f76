// Package cli provides the command-line interface for zkconfig.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/zkconfig/internal/cli/commands"
	"github.com/leapstack-labs/zkconfig/internal/config"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "zkconfig",
		Short: "zkconfig - zksolc compiler configuration",
		Long: `zkconfig manages zksolc compiler settings and produces standard JSON
compiler input.

Sources are written in a fixed order: entry files first, then their imports
in the order they appear. Block explorers show verified files in that order.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			project, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if project.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			if project.ConfigFile != "" {
				logger.Debug("using config file", "path", project.ConfigFile)
			}

			ctx := config.WithLogger(cmd.Context(), logger)
			ctx = config.WithProject(ctx, project)
			cmd.SetContext(ctx)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{.Name}} {{.Version}}
Built %s from %s
`, BuildDate, GitCommit))

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./zkconfig.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("compiler-path", "", "Path or URL of the zksolc binary")
	rootCmd.PersistentFlags().String("compiler-version", "", "zksolc version the project targets")
	rootCmd.PersistentFlags().String("base-dir", "", "Directory source paths are relative to")
	rootCmd.PersistentFlags().Bool("force-evmla", false, "Force the EVM legacy assembly pipeline")
	rootCmd.PersistentFlags().Bool("system-mode", false, "Enable system contract compilation mode")
	rootCmd.PersistentFlags().StringSlice("remapping", nil, "Import remapping [context:]prefix=target (repeatable)")
	rootCmd.PersistentFlags().StringSlice("library", nil, "Library address file:Name:0xaddress (repeatable)")

	rootCmd.AddCommand(commands.NewVersionCommand(commands.BuildInfo{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}))
	rootCmd.AddCommand(commands.NewInputCommand())
	rootCmd.AddCommand(commands.NewSettingsCommand())
	rootCmd.AddCommand(commands.NewLibrariesCommand())
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(NewCompletionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// NewCompletionCommand creates the completion command.
func NewCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for zkconfig.

To load completions:

Bash:
  $ source <(zkconfig completion bash)

Zsh:
  $ zkconfig completion zsh > "${fpath[1]}/_zkconfig"

Fish:
  $ zkconfig completion fish | source

PowerShell:
  PS> zkconfig completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}
