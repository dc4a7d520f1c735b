package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/notnil/chess"
	"github.com/spf13/cobra"

	"github.com/discochess/patzer"
	"github.com/discochess/patzer/internal/fen"
)

var moveCmd = &cobra.Command{
	Use:   "move [FEN]",
	Short: "Pick a move for a chess position",
	Long: `Pick a move for the side to move in a position given in FEN notation.

The FEN string should include at least the piece placement and side to move.
The halfmove clock and fullmove number are optional.

Examples:
  # Starting position at default strength
  patzer move "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"

  # A weak engine, reproducibly
  patzer move "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -" --elo 600 --seed 1`,
	Args: cobra.ExactArgs(1),
	RunE: runMove,
}

var (
	outputJSON bool
	showTiming bool
	seed       int64
)

func init() {
	moveCmd.Flags().BoolVar(&outputJSON, "json", false, "output result as JSON")
	moveCmd.Flags().BoolVar(&showTiming, "timing", false, "show selection timing")
	moveCmd.Flags().Int64Var(&seed, "seed", 0, "seed for the blunder randomness (0 = time-seeded)")
	rootCmd.AddCommand(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	full, err := fen.Complete(args[0])
	if err != nil {
		return fmt.Errorf("parsing FEN: %w", err)
	}

	side, err := fen.SideToMove(full)
	if err != nil {
		return fmt.Errorf("parsing FEN: %w", err)
	}

	fenFn, err := chess.FEN(full)
	if err != nil {
		return fmt.Errorf("parsing FEN: %w", err)
	}
	pos := chess.NewGame(fenFn).Position()

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	opts := []patzer.Option{
		patzer.WithElo(elo),
		patzer.WithLogger(logger),
	}
	if seed != 0 {
		opts = append(opts, patzer.WithRandom(rand.New(rand.NewSource(seed))))
	}

	eng, err := patzer.New(opts...)
	if err != nil {
		return fmt.Errorf("creating engine: %w", err)
	}

	start := time.Now()
	sel, err := eng.SelectMove(context.Background(), pos)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("selecting move: %w", err)
	}

	if outputJSON {
		out := struct {
			Side    string `json:"side"`
			Move    string `json:"move"`
			Score   int    `json:"score"`
			Depth   int    `json:"depth"`
			Blunder bool   `json:"blunder"`
			Nodes   int64  `json:"nodes"`
		}{
			Side:    sideName(side),
			Move:    sel.Move.String(),
			Score:   sel.Score,
			Depth:   sel.Depth,
			Blunder: sel.Blunder,
			Nodes:   sel.Nodes,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("Side:  %s\n", sideName(side))
	fmt.Printf("Move:  %s\n", sel.Move)
	fmt.Printf("Score: %s\n", sel.ScoreString())
	fmt.Printf("Depth: %d\n", sel.Depth)
	fmt.Printf("Nodes: %d\n", sel.Nodes)
	if sel.Blunder {
		fmt.Println("Note:  the engine chose to play a weaker move")
	}
	if showTiming {
		fmt.Printf("Time:  %v\n", elapsed)
	}
	return nil
}

// sideName turns the FEN side-to-move field into a display name.
func sideName(side string) string {
	if side == "b" {
		return "black"
	}
	return "white"
}
