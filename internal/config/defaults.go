package config

import "github.com/leapstack-labs/zkconfig/pkg/zksolc"

// Default configuration values.
const (
	DefaultCompilerPath = "zksolc"
	DefaultBaseDir      = "."

	// MinCompilerVersion is the oldest zksolc release whose standard JSON
	// input matches the settings model.
	MinCompilerVersion = "1.3.0"
)

// ApplyDefaults fills unset project fields.
func ApplyDefaults(p *Project) {
	if p == nil {
		return
	}
	if p.CompilerPath == "" {
		p.CompilerPath = DefaultCompilerPath
	}
	if p.BaseDir == "" {
		p.BaseDir = DefaultBaseDir
	}
	if p.Settings != nil {
		p.Settings.ApplyDefaults()
	}
}

// DefaultProject returns the configuration used when no config file exists.
func DefaultProject() *Project {
	settings := zksolc.DefaultSettings()
	return &Project{
		CompilerPath: DefaultCompilerPath,
		BaseDir:      DefaultBaseDir,
		Settings:     &settings,
	}
}
