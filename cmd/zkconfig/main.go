// Package main provides the zkconfig command.
package main

import (
	"os"

	"github.com/leapstack-labs/zkconfig/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
