// Package main is the entry point for the drone-cover CLI.
package main

import (
	"os"

	"drone-cover/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
