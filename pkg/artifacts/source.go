package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"
)

// Source is the content of a single source file.
type Source struct {
	Content string `json:"content"`
}

// NewSource returns a Source holding content.
func NewSource(content string) Source {
	return Source{Content: content}
}

// ReadSource reads the file at path into a Source.
func ReadSource(path string) (Source, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is a project source file
	if err != nil {
		return Source{}, fmt.Errorf("failed to read source %s: %w", path, err)
	}
	return Source{Content: string(data)}, nil
}

// sourceJSON has the fields of Source without its methods.
type sourceJSON Source

// MarshalJSON rejects content that is not valid UTF-8 instead of letting
// encoding/json replace the bad bytes.
func (s Source) MarshalJSON() ([]byte, error) {
	if !utf8.ValidString(s.Content) {
		return nil, fmt.Errorf("%w in source content", ErrInvalidEncoding)
	}
	return json.Marshal(sourceJSON(s))
}

// UnmarshalJSON requires the content member.
func (s *Source) UnmarshalJSON(data []byte) error {
	if err := RequireFields(data, "content"); err != nil {
		return err
	}
	return json.Unmarshal(data, (*sourceJSON)(s))
}

// Sources is the ordered path to source mapping submitted to the compiler.
type Sources = OrderedMap[Source]
