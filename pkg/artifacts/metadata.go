package artifacts

import "fmt"

// BytecodeHash selects the hash appended to the bytecode metadata.
type BytecodeHash string

// Supported bytecode hash kinds.
const (
	BytecodeHashNone      BytecodeHash = "none"
	BytecodeHashIPFS      BytecodeHash = "ipfs"
	BytecodeHashBzzr1     BytecodeHash = "bzzr1"
	BytecodeHashKeccak256 BytecodeHash = "keccak256"
)

// Validate rejects unknown hash kinds. The empty value means unset.
func (h BytecodeHash) Validate() error {
	switch h {
	case "", BytecodeHashNone, BytecodeHashIPFS, BytecodeHashBzzr1, BytecodeHashKeccak256:
		return nil
	default:
		return fmt.Errorf("unknown bytecode hash %q", string(h))
	}
}

// UnmarshalText rejects unknown hash kinds.
func (h *BytecodeHash) UnmarshalText(text []byte) error {
	v := BytecodeHash(text)
	if err := v.Validate(); err != nil {
		return err
	}
	*h = v
	return nil
}

// SettingsMetadata controls the metadata the compiler emits.
type SettingsMetadata struct {
	// Use only literal content and not URLs.
	UseLiteralContent *bool `json:"useLiteralContent,omitempty"`
	// Hash method for the metadata appended to the bytecode.
	BytecodeHash BytecodeHash `json:"bytecodeHash,omitempty"`
	// Whether to append the CBOR encoded metadata.
	CBORMetadata *bool `json:"appendCBOR,omitempty"`
}
