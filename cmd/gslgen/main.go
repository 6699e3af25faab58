// Package main is the entry point for the gslgen CLI.
package main

import (
	"os"

	"gslgen/cmd/gslgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
