package zksolc

import (
	"encoding/json"
	"fmt"

	"github.com/leapstack-labs/zkconfig/pkg/artifacts"
)

// Settings are the options of one compilation run.
type Settings struct {
	// Remappings applied to imports, in order.
	Remappings []artifacts.Remapping       `json:"remappings,omitempty"`
	Optimizer  Optimizer                   `json:"optimizer"`
	Metadata   *artifacts.SettingsMetadata `json:"metadata,omitempty"`
	// OutputSelection picks compiler outputs by file and contract name.
	OutputSelection artifacts.OutputSelection `json:"outputSelection"`
	// Libraries holds deployed library addresses keyed by the source file
	// that uses them. If remappings are used, the file name must match the
	// path after remapping. The empty file name applies globally.
	Libraries artifacts.Libraries `json:"libraries"`
	// IsSystem enables system contract compilation mode.
	IsSystem bool `json:"isSystem"`
	// ForceEVMLA switches to the EVM legacy assembly pipeline.
	ForceEVMLA bool `json:"forceEvmla"`
	// MissingLibrariesPath is where libraries that could not be linked are
	// recorded so they can be compiled and deployed separately.
	MissingLibrariesPath string `json:"missingLibrariesPath,omitempty"`
	// AreLibrariesMissing is set by callers while deploying missing
	// libraries; they use it to keep quiet about successful compilation.
	AreLibrariesMissing bool `json:"areLibrariesMissing"`
	// ContractsToCompile restricts this run to the named contracts.
	ContractsToCompile []string `json:"contractsToCompile,omitempty"`
}

// Optimizer holds the bytecode optimizer parameters. Unset pointer fields
// leave the choice to the compiler.
type Optimizer struct {
	Enabled *bool                       `json:"enabled"`
	Mode    *string                     `json:"mode"`
	Details *artifacts.OptimizerDetails `json:"details"`
	// FallbackToOptimizingForSize retries with -Oz when the bytecode is too large.
	FallbackToOptimizingForSize *bool `json:"fallbackToOptimizingForSize"`

	DisableSystemRequestMemoization bool `json:"disableSystemRequestMemoization"`
}

// DefaultSettings returns settings with the default optimizer, the standard
// output selection and no libraries. Each call returns an independent value.
func DefaultSettings() Settings {
	return Settings{
		OutputSelection: artifacts.DefaultOutputSelection(),
		Libraries:       artifacts.Libraries{},
	}
}

// ApplyDefaults fills the fields a partially decoded Settings left unset.
func (s *Settings) ApplyDefaults() {
	if s == nil {
		return
	}
	if s.OutputSelection == nil {
		s.OutputSelection = artifacts.DefaultOutputSelection()
	}
	if s.Libraries == nil {
		s.Libraries = artifacts.Libraries{}
	}
}

// settingsJSON has the fields of Settings without its methods.
type settingsJSON Settings

// MarshalJSON writes nil selection and library maps as {} rather than null.
func (s Settings) MarshalJSON() ([]byte, error) {
	if s.OutputSelection == nil {
		s.OutputSelection = artifacts.OutputSelection{}
	}
	if s.Libraries == nil {
		s.Libraries = artifacts.Libraries{}
	}
	return json.Marshal(settingsJSON(s))
}

// UnmarshalJSON requires optimizer, isSystem and forceEvmla. Absent
// outputSelection and libraries decode as empty.
func (s *Settings) UnmarshalJSON(data []byte) error {
	if err := artifacts.RequireFields(data, "optimizer", "isSystem", "forceEvmla"); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if err := json.Unmarshal(data, (*settingsJSON)(s)); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if s.OutputSelection == nil {
		s.OutputSelection = artifacts.OutputSelection{}
	}
	if s.Libraries == nil {
		s.Libraries = artifacts.Libraries{}
	}
	return nil
}

type optimizerJSON Optimizer

// UnmarshalJSON requires disableSystemRequestMemoization.
func (o *Optimizer) UnmarshalJSON(data []byte) error {
	if err := artifacts.RequireFields(data, "disableSystemRequestMemoization"); err != nil {
		return fmt.Errorf("optimizer: %w", err)
	}
	return json.Unmarshal(data, (*optimizerJSON)(o))
}
