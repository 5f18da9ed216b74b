// Package main is the entry point for the stackgen CLI.
package main

import (
	"fmt"
	"os"

	"github.com/opmodel/stackgen/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		exitErr := cmd.AsExitError(err)
		// Only print if the command layer hasn't already printed it
		if !exitErr.Printed {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitErr.Code)
	}
}
