// Package main provides the patzer CLI for playing against and inspecting
// the tunable-strength chess engine.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
