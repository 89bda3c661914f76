// Package config loads zkconfig project configuration.
//
// A project file (zkconfig.yaml, zkconfig.yml or zkconfig.toml) describes the
// zksolc compiler configuration together with the entry files of the
// project. Keys use the same names as the compiler's JSON input, so a
// settings block can be copied between the two.
package config

import (
	"github.com/leapstack-labs/zkconfig/pkg/zksolc"
)

// Project holds a loaded project configuration.
type Project struct {
	// CompilerVersion is the zksolc version the project targets (semver).
	CompilerVersion string `json:"compiler_version"`
	// Sources are the entry files, relative to BaseDir, in submission order.
	Sources []string `json:"sources"`
	// BaseDir is the directory source paths are relative to.
	BaseDir string `json:"base_dir"`
	// Output is where generated compiler input is written. Empty means stdout.
	Output  string `json:"output"`
	Verbose bool   `json:"verbose"`

	CompilerPath       string           `json:"compiler_path"`
	Settings           *zksolc.Settings `json:"settings"`
	ContractsToCompile []string         `json:"contracts_to_compile"`
	AvoidContracts     []string         `json:"avoid_contracts"`

	// Root is the project root directory.
	Root string `json:"-"`
	// ConfigFile is the config file that was loaded, if any.
	ConfigFile string `json:"-"`
}

// CompilerConfig assembles the zksolc configuration described by the project.
func (p *Project) CompilerConfig() (*zksolc.Config, error) {
	b := zksolc.NewConfigBuilder().WithCompilerPath(p.CompilerPath)
	if p.Settings != nil {
		b = b.WithSettings(*p.Settings)
	}
	if p.ContractsToCompile != nil {
		b = b.WithContractsToCompile(p.ContractsToCompile...)
	}
	if p.AvoidContracts != nil {
		b = b.WithAvoidContracts(p.AvoidContracts...)
	}
	return b.Build()
}

// EffectiveSettings returns the project settings, or the defaults when none are configured.
func (p *Project) EffectiveSettings() zksolc.Settings {
	if p.Settings == nil {
		return zksolc.DefaultSettings()
	}
	return *p.Settings
}
