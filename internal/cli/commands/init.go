package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/zkconfig/internal/config"
	"github.com/leapstack-labs/zkconfig/pkg/zksolc"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const configFileName = "zkconfig.yaml"

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a starter zkconfig.yaml",
		Long: `Create a zkconfig.yaml holding the default zksolc settings.

The settings block uses the key names of the compiler's standard JSON input.`,
		Example: `  # Initialize in current directory
  zkconfig init

  # Initialize in a new directory
  zkconfig init my-contracts

  # Force overwrite existing config
  zkconfig init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runInit(cmd, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, force bool) error {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, configFileName)
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("%s already exists. Use --force to overwrite", configFileName)
	}

	data, err := starterConfig()
	if err != nil {
		return err
	}
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Created %s\n\n", configPath)
	_, _ = fmt.Fprintln(out, "Next steps:")
	_, _ = fmt.Fprintln(out, "  1. List your entry contracts under sources")
	_, _ = fmt.Fprintln(out, "  2. Run 'zkconfig input' to generate compiler input")
	return nil
}

// starterConfig renders the default project file. The settings block is
// produced from the JSON form of the default settings so its keys and order
// match the compiler input.
func starterConfig() ([]byte, error) {
	settingsJSON, err := json.Marshal(zksolc.DefaultSettings())
	if err != nil {
		return nil, fmt.Errorf("failed to encode default settings: %w", err)
	}

	var settings yaml.Node
	if err := yaml.Unmarshal(settingsJSON, &settings); err != nil {
		return nil, fmt.Errorf("failed to convert default settings: %w", err)
	}
	blockStyle(&settings)

	root := &yaml.Node{
		Kind:        yaml.MappingNode,
		HeadComment: "zkconfig project file",
		Content: []*yaml.Node{
			scalar("compiler_version"), scalar(config.MinCompilerVersion),
			scalar("compiler_path"), scalar(config.DefaultCompilerPath),
			scalar("base_dir"), scalar(config.DefaultBaseDir),
			scalar("sources"), {Kind: yaml.SequenceNode, Tag: "!!seq"},
			scalar("settings"), settings.Content[0],
		},
	}
	root.Content[6].HeadComment = "Entry files in submission order"

	data, err := yaml.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", configFileName, err)
	}
	return data, nil
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

// blockStyle clears the flow and quoting styles picked up from JSON.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
