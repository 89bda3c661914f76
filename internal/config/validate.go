package config

import (
	"errors"
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ErrUnsupportedCompilerVersion is returned for compiler versions older than MinCompilerVersion.
var ErrUnsupportedCompilerVersion = errors.New("unsupported compiler version")

var minVersionConstraint = mustConstraint(">= " + MinCompilerVersion)

func mustConstraint(c string) *semver.Constraints {
	constraint, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraint
}

// Validate checks the project configuration.
func (p *Project) Validate() error {
	if p.CompilerPath == "" {
		return fmt.Errorf("compiler_path is required")
	}

	if p.CompilerVersion != "" {
		v, err := semver.NewVersion(p.CompilerVersion)
		if err != nil {
			return fmt.Errorf("invalid compiler_version %q: %w", p.CompilerVersion, err)
		}
		if !minVersionConstraint.Check(v) {
			return fmt.Errorf("%w: %s (need >= %s)", ErrUnsupportedCompilerVersion, v, MinCompilerVersion)
		}
	}

	if p.Settings != nil && p.Settings.Metadata != nil {
		if err := p.Settings.Metadata.BytecodeHash.Validate(); err != nil {
			return err
		}
	}
	return nil
}
