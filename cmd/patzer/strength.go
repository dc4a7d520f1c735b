package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/discochess/patzer/internal/strength"
)

var strengthCmd = &cobra.Command{
	Use:   "strength",
	Short: "Show the strength table",
	Long: `Show how ELO-like ratings map to search depth and blunder probability.
Ratings below the lowest band or above the highest clamp to the nearest band.`,
	RunE: runStrength,
}

func init() {
	rootCmd.AddCommand(strengthCmd)
}

func runStrength(cmd *cobra.Command, args []string) error {
	bands := strength.Bands()

	fmt.Println("Rating      Depth  Blunder probability")
	for i, b := range bands {
		var rating string
		if i == len(bands)-1 {
			rating = fmt.Sprintf(">= %d", b.Min)
		} else {
			rating = fmt.Sprintf("%d-%d", b.Min, bands[i+1].Min-1)
		}
		fmt.Printf("%-11s %-6d %.2f\n", rating, b.Params.Depth, b.Params.BlunderProbability)
	}
	return nil
}
