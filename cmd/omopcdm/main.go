// Package main provides the omopcdm command-line tool.
package main

import (
	"os"

	"github.com/leapstack-labs/omopcdm/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
