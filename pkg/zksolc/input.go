package zksolc

import (
	"encoding/json"
	"fmt"

	"github.com/leapstack-labs/zkconfig/pkg/artifacts"
)

// LanguageSolidity is the language tag of every StandardJSONInput.
const LanguageSolidity = "Solidity"

// StandardJSONInput is the zksolc standard JSON input used for verification.
//
// Unlike a map keyed by path, Sources is written in the order of its entries.
// Block explorers display verified files in submission order, so callers put
// the entry point first and its dependencies after it.
type StandardJSONInput struct {
	Language string            `json:"language"`
	Sources  artifacts.Sources `json:"sources"`
	Settings Settings          `json:"settings"`
}

// NewStandardJSONInput returns a Solidity input for the given ordered sources.
func NewStandardJSONInput(sources artifacts.Sources, settings Settings) *StandardJSONInput {
	return &StandardJSONInput{
		Language: LanguageSolidity,
		Sources:  sources,
		Settings: settings,
	}
}

// Validate reports duplicate or badly encoded source paths.
func (in *StandardJSONInput) Validate() error {
	if err := in.Sources.Validate(); err != nil {
		return fmt.Errorf("sources: %w", err)
	}
	return nil
}

type standardJSONInput StandardJSONInput

// UnmarshalJSON requires language, sources and settings.
func (in *StandardJSONInput) UnmarshalJSON(data []byte) error {
	if err := artifacts.RequireFields(data, "language", "sources", "settings"); err != nil {
		return err
	}
	return json.Unmarshal(data, (*standardJSONInput)(in))
}
