package zksolc

import (
	"encoding/json"

	"github.com/leapstack-labs/zkconfig/pkg/artifacts"
)

// Config is the complete zksolc configuration for a compilation run.
// Build it with ConfigBuilder and do not modify it afterwards.
type Config struct {
	// CompilerPath is the zksolc binary. It may also be a download URL.
	CompilerPath string   `json:"compiler_path"`
	Settings     Settings `json:"settings"`
	// ContractsToCompile limits compilation to the named contracts. Nil means all.
	ContractsToCompile []string `json:"contracts_to_compile"`
	// AvoidContracts excludes the named contracts. When both lists are set
	// the caller decides how they combine.
	AvoidContracts []string `json:"avoid_contracts"`
}

type configJSON Config

// UnmarshalJSON requires compiler_path and settings. The contract lists may be absent.
func (c *Config) UnmarshalJSON(data []byte) error {
	if err := artifacts.RequireFields(data, "compiler_path", "settings"); err != nil {
		return err
	}
	return json.Unmarshal(data, (*configJSON)(c))
}
