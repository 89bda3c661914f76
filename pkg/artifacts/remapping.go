package artifacts

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRemapping is returned for remappings that do not have the form
// [context:]prefix=target.
var ErrInvalidRemapping = errors.New("invalid remapping")

// Remapping redirects imports that start with Name to Path. When Context is
// set, it only applies to files under that directory.
type Remapping struct {
	Context string
	Name    string
	Path    string
}

// ParseRemapping parses "[context:]prefix=target".
func ParseRemapping(s string) (Remapping, error) {
	prefix, target, ok := strings.Cut(strings.TrimSpace(s), "=")
	if !ok {
		return Remapping{}, fmt.Errorf("%w %q: missing '='", ErrInvalidRemapping, s)
	}

	var r Remapping
	if ctx, name, hasCtx := strings.Cut(prefix, ":"); hasCtx {
		r.Context = ctx
		r.Name = name
	} else {
		r.Name = prefix
	}
	r.Path = target

	if r.Name == "" {
		return Remapping{}, fmt.Errorf("%w %q: empty prefix", ErrInvalidRemapping, s)
	}
	if r.Path == "" {
		return Remapping{}, fmt.Errorf("%w %q: empty target", ErrInvalidRemapping, s)
	}
	return r, nil
}

// ParseRemappings parses each entry of specs in order.
func ParseRemappings(specs []string) ([]Remapping, error) {
	out := make([]Remapping, 0, len(specs))
	for _, s := range specs {
		r, err := ParseRemapping(s)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (r Remapping) String() string {
	if r.Context != "" {
		return r.Context + ":" + r.Name + "=" + r.Path
	}
	return r.Name + "=" + r.Path
}

// MarshalText encodes the remapping in its string form.
func (r Remapping) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText decodes a remapping from its string form.
func (r *Remapping) UnmarshalText(text []byte) error {
	parsed, err := ParseRemapping(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
