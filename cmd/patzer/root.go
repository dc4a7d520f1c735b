package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags.
	elo     int
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "patzer",
	Short: "A chess engine with tunable, ELO-like playing strength",
	Long: `Patzer is a lightweight chess engine for casual play. One strength
setting controls both how deep it searches and how often it deliberately
plays a weaker move.

Examples:
  # Pick a move for the starting position at 1500 strength
  patzer move "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -" --elo 1500

  # Watch a 2300 engine beat an 800 engine
  patzer play --white-elo 2300 --black-elo 800

  # Show the strength bands
  patzer strength`,
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&elo, "elo", "e", 1500, "engine strength on an ELO-like scale")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// newLogger returns a development logger when --verbose is set, otherwise a
// no-op logger.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewNop(), nil
}
