package artifacts

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ErrInvalidLibrary is returned for library specs that do not have the form
// file:Name:0xaddress.
var ErrInvalidLibrary = errors.New("invalid library")

// Libraries maps a source file to the deployed addresses of the libraries it
// uses. The empty file name applies to every file.
type Libraries map[string]map[string]common.Address

// MarshalJSON writes addresses in EIP-55 checksummed form. A nil Libraries is written as {}.
func (l Libraries) MarshalJSON() ([]byte, error) {
	out := make(map[string]map[string]string, len(l))
	for file, byName := range l {
		hex := make(map[string]string, len(byName))
		for name, addr := range byName {
			hex[name] = addr.Hex()
		}
		out[file] = hex
	}
	return json.Marshal(out)
}

// Library is one flattened entry of Libraries.
type Library struct {
	File    string
	Name    string
	Address common.Address
}

// ParseLibrary parses "file:Name:0xaddress". The file may itself contain ':'.
func ParseLibrary(spec string) (Library, error) {
	spec = strings.TrimSpace(spec)
	addrIdx := strings.LastIndex(spec, ":")
	if addrIdx < 0 {
		return Library{}, fmt.Errorf("%w %q: expected file:Name:address", ErrInvalidLibrary, spec)
	}
	rest, addr := spec[:addrIdx], spec[addrIdx+1:]
	nameIdx := strings.LastIndex(rest, ":")
	if nameIdx < 0 {
		return Library{}, fmt.Errorf("%w %q: expected file:Name:address", ErrInvalidLibrary, spec)
	}
	file, name := rest[:nameIdx], rest[nameIdx+1:]

	if name == "" {
		return Library{}, fmt.Errorf("%w %q: empty library name", ErrInvalidLibrary, spec)
	}
	if !common.IsHexAddress(addr) {
		return Library{}, fmt.Errorf("%w %q: bad address %q", ErrInvalidLibrary, spec, addr)
	}
	return Library{File: file, Name: name, Address: common.HexToAddress(addr)}, nil
}

// ParseLibraries parses every spec into a Libraries value.
func ParseLibraries(specs []string) (Libraries, error) {
	libs := Libraries{}
	for _, s := range specs {
		lib, err := ParseLibrary(s)
		if err != nil {
			return nil, err
		}
		libs.Add(lib.File, lib.Name, lib.Address)
	}
	return libs, nil
}

// Add records the address of library name used by file.
func (l Libraries) Add(file, name string, addr common.Address) {
	byName, ok := l[file]
	if !ok {
		byName = make(map[string]common.Address)
		l[file] = byName
	}
	byName[name] = addr
}

// Merge copies every entry of other into l, replacing existing addresses.
func (l Libraries) Merge(other Libraries) {
	for file, byName := range other {
		for name, addr := range byName {
			l.Add(file, name, addr)
		}
	}
}

// List returns the entries sorted by file, then name.
func (l Libraries) List() []Library {
	var out []Library
	for file, byName := range l {
		for name, addr := range byName {
			out = append(out, Library{File: file, Name: name, Address: addr})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].File != out[j].File {
			return out[i].File < out[j].File
		}
		return out[i].Name < out[j].Name
	})
	return out
}
