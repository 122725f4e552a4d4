// Package main provides the switchcheck CLI, which verifies that every
// supported build configuration of the facade packages compiles (or
// fails to compile) as intended.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
