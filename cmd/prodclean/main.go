// Package main is the entry point for the prodclean CLI.
package main

import (
	"os"

	"github.com/jmylchreest/prodclean/cmd/prodclean/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
