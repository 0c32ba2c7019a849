// Package main is the entry point for the mcpreg CLI.
package main

import (
	"os"

	"github.com/thoreinstein/mcpreg/cmd/mcpreg/commands"
	"github.com/thoreinstein/mcpreg/internal/errors"
)

func main() {
	if err := commands.Execute(); err != nil {
		commands.PrintError(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
