package artifacts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrDuplicateKey is returned when an OrderedMap holds the same key twice.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrInvalidEncoding is returned when a key or value is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8")

// Entry is a single member of an OrderedMap.
type Entry[V any] struct {
	Key   string
	Value V
}

// OrderedMap is a JSON object whose members are written and read in slice order.
//
// encoding/json sorts map keys on output. OrderedMap is used where the member
// order carries meaning, such as the sources of a verification request, which
// an explorer displays in the order they were submitted.
type OrderedMap[V any] []Entry[V]

// Keys returns the keys in order.
func (m OrderedMap[V]) Keys() []string {
	keys := make([]string, len(m))
	for i, e := range m {
		keys[i] = e.Key
	}
	return keys
}

// Get returns the value for key.
func (m OrderedMap[V]) Get(key string) (V, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// Validate reports the first key that appears more than once or is not valid UTF-8.
func (m OrderedMap[V]) Validate() error {
	seen := make(map[string]struct{}, len(m))
	for _, e := range m {
		if !utf8.ValidString(e.Key) {
			return fmt.Errorf("%w in key %q", ErrInvalidEncoding, e.Key)
		}
		if _, dup := seen[e.Key]; dup {
			return fmt.Errorf("%w %q", ErrDuplicateKey, e.Key)
		}
		seen[e.Key] = struct{}{}
	}
	return nil
}

// MarshalJSON writes the entries as object members in slice order.
// A nil or empty map is written as {}.
func (m OrderedMap[V]) MarshalJSON() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", e.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the members of a JSON object in document order.
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		// null leaves the map untouched, like encoding/json does for maps.
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	out := OrderedMap[V]{}
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w %q", ErrDuplicateKey, key)
		}
		seen[key] = struct{}{}

		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("%q: %w", key, err)
		}
		out = append(out, Entry[V]{Key: key, Value: v})
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = out
	return nil
}
