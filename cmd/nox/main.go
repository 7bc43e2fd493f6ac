// Package main provides the nox command.
package main

import (
	"os"

	"github.com/nox-docs/nox/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
