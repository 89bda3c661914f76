// Package artifacts defines the value types embedded in zksolc compiler input.
//
// This package contains:
//   - Remappings, output selection, library addresses and metadata settings
//   - Source file contents
//   - OrderedMap, a JSON object codec that keeps member order
//
// The types here are plain values. They carry their own wire contract and
// perform no resolution of their own: remappings are not applied, libraries
// are not linked and output selection is handed to the compiler as is.
package artifacts
