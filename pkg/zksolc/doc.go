// Package zksolc holds the configuration of the zksolc compiler and builds
// its standard JSON input.
//
// Config and Settings are plain values with a defined default for every
// field. ConfigBuilder assembles a Config from optional pieces.
// StandardJSONInput is the document submitted to the compiler or to a block
// explorer for verification; its sources keep the order they were given in.
package zksolc
