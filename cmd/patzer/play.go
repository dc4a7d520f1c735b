package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/notnil/chess"
	"github.com/spf13/cobra"

	"github.com/discochess/patzer"
	"github.com/discochess/patzer/internal/archive"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a full game between two engine strengths",
	Long: `Play a complete game with the engine taking both sides at separately
configurable strengths, printing moves as they are played.

Examples:
  # A strong engine against a weak one
  patzer play --white-elo 2300 --black-elo 800

  # Save the game, zstd-compressed
  patzer play --white-elo 1500 --black-elo 1500 --pgn-out game.pgn.zst`,
	RunE: runPlay,
}

var (
	whiteElo int
	blackElo int
	maxMoves int
	pgnOut   string
	playSeed int64
)

func init() {
	playCmd.Flags().IntVar(&whiteElo, "white-elo", 1500, "White's strength")
	playCmd.Flags().IntVar(&blackElo, "black-elo", 1500, "Black's strength")
	playCmd.Flags().IntVar(&maxMoves, "max-moves", 150, "maximum full moves before the game is abandoned")
	playCmd.Flags().StringVar(&pgnOut, "pgn-out", "", "write the game as PGN (.gz/.zst compress)")
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "seed for the blunder randomness (0 = time-seeded)")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	newEngine := func(elo int, seedOffset int64) (*patzer.Engine, error) {
		opts := []patzer.Option{
			patzer.WithElo(elo),
			patzer.WithLogger(logger),
		}
		if playSeed != 0 {
			opts = append(opts, patzer.WithRandom(rand.New(rand.NewSource(playSeed+seedOffset))))
		}
		return patzer.New(opts...)
	}

	white, err := newEngine(whiteElo, 0)
	if err != nil {
		return fmt.Errorf("creating white engine: %w", err)
	}
	black, err := newEngine(blackElo, 1)
	if err != nil {
		return fmt.Errorf("creating black engine: %w", err)
	}

	game := chess.NewGame()
	ctx := context.Background()

	fmt.Printf("White (%d) vs Black (%d)\n\n", whiteElo, blackElo)

	plies := 0
	for game.Outcome() == chess.NoOutcome && plies < 2*maxMoves {
		eng := white
		if game.Position().Turn() == chess.Black {
			eng = black
		}

		sel, err := eng.SelectMove(ctx, game.Position())
		if err != nil {
			if errors.Is(err, patzer.ErrNoLegalMoves) {
				break
			}
			return fmt.Errorf("selecting move: %w", err)
		}
		if err := game.Move(sel.Move); err != nil {
			return fmt.Errorf("applying %s: %w", sel.Move, err)
		}
		plies++

		if plies%2 == 1 {
			fmt.Printf("%3d. %-8s", (plies+1)/2, sel.Move)
		} else {
			fmt.Printf("%s\n", sel.Move)
		}
	}
	if plies%2 == 1 {
		fmt.Println()
	}

	fmt.Printf("\nResult: %s (%s)\n", game.Outcome(), game.Method())

	if pgnOut != "" {
		if err := archive.WritePGN(pgnOut, []string{game.String()}); err != nil {
			return fmt.Errorf("writing PGN: %w", err)
		}
		fmt.Printf("Game written to %s\n", pgnOut)
	}
	return nil
}
