package artifacts

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MissingFieldError reports a required JSON member that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}

// RequireFields checks that the JSON object in data has every named member.
// A literal null passes; callers treat it as "leave unchanged".
func RequireFields(data []byte, fields ...string) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	for _, f := range fields {
		if _, ok := members[f]; !ok {
			return &MissingFieldError{Field: f}
		}
	}
	return nil
}
