package zksolc

import "errors"

// ErrBuilderConsumed is returned by Build on a builder that already built a Config.
var ErrBuilderConsumed = errors.New("config builder already used")

// ConfigBuilder accumulates the optional pieces of a Config.
// A builder produces a single Config.
type ConfigBuilder struct {
	compilerPath       string
	settings           *Settings
	contractsToCompile []string
	avoidContracts     []string
	consumed           bool
}

// NewConfigBuilder returns an empty builder.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{}
}

// WithCompilerPath sets the path or URL of the zksolc binary.
func (b *ConfigBuilder) WithCompilerPath(path string) *ConfigBuilder {
	b.compilerPath = path
	return b
}

// WithSettings sets the compiler settings.
func (b *ConfigBuilder) WithSettings(settings Settings) *ConfigBuilder {
	b.settings = &settings
	return b
}

// WithContractsToCompile restricts compilation to the named contracts.
// Calling it with no names sets an empty list, which is kept distinct from unset.
func (b *ConfigBuilder) WithContractsToCompile(names ...string) *ConfigBuilder {
	b.contractsToCompile = copyNames(names)
	return b
}

// WithAvoidContracts excludes the named contracts from compilation.
func (b *ConfigBuilder) WithAvoidContracts(names ...string) *ConfigBuilder {
	b.avoidContracts = copyNames(names)
	return b
}

// copyNames returns a non-nil copy of names.
func copyNames(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Build returns the Config. Settings default to DefaultSettings when never set.
func (b *ConfigBuilder) Build() (*Config, error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	b.consumed = true

	settings := DefaultSettings()
	if b.settings != nil {
		settings = *b.settings
	}

	return &Config{
		CompilerPath:       b.compilerPath,
		Settings:           settings,
		ContractsToCompile: b.contractsToCompile,
		AvoidContracts:     b.avoidContracts,
	}, nil
}
