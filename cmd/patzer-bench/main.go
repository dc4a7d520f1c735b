// Package main provides a self-play benchmark that estimates the real
// strength gap between two engine settings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/discochess/patzer/benchmark/analysis"
	"github.com/discochess/patzer/benchmark/reporting"
	"github.com/discochess/patzer/benchmark/simulation"
	"github.com/discochess/patzer/internal/archive"
)

func main() {
	var (
		whiteElo = flag.Int("white-elo", 1700, "White's strength")
		blackElo = flag.Int("black-elo", 900, "Black's strength")
		games    = flag.Int("games", 20, "number of games to play")
		maxPlies = flag.Int("max-plies", 200, "plies before a game is scored as a draw")
		seed     = flag.Int64("seed", 1, "randomness seed (0 = time-seeded)")
		report   = flag.String("report", "", "write a Markdown report to this file")
		pgnOut   = flag.String("pgn-out", "", "write all games as a PGN archive (.gz/.zst compress)")
	)
	flag.Parse()

	cfg := simulation.Config{
		WhiteElo: *whiteElo,
		BlackElo: *blackElo,
		Games:    *games,
		MaxPlies: *maxPlies,
		Seed:     *seed,
	}

	sim, err := simulation.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create simulator: %v", err)
	}

	fmt.Printf("Playing %d games: White (%d) vs Black (%d)...\n", cfg.Games, cfg.WhiteElo, cfg.BlackElo)

	summary, err := sim.Run(context.Background())
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	stats := analysis.Summarize(summary.Scores())
	est := analysis.EstimateElo(stats)

	fmt.Printf("\nResults: +%d -%d =%d (score %.3f)\n",
		summary.WhiteWins, summary.BlackWins, summary.Draws, summary.WhiteScore())
	fmt.Printf("Estimated Elo difference: %+.0f [%+.0f, %+.0f]\n",
		est.Diff, est.CI95Low, est.CI95High)

	if *report != "" {
		f, err := os.Create(*report)
		if err != nil {
			log.Fatalf("Failed to create report: %v", err)
		}
		defer f.Close()

		md := reporting.NewMarkdownReport(f)
		md.WriteHeader("Patzer self-play benchmark")
		md.WriteMethodology(cfg)
		md.WriteSummary(summary)
		md.WriteEloEstimate(stats, est)
		md.WriteGames(summary)
		fmt.Printf("Report written to %s\n", *report)
	}

	if *pgnOut != "" {
		pgns := make([]string, len(summary.Records))
		for i, rec := range summary.Records {
			pgns[i] = rec.PGN
		}
		if err := archive.WritePGN(*pgnOut, pgns); err != nil {
			log.Fatalf("Failed to write PGN archive: %v", err)
		}
		fmt.Printf("Games written to %s\n", *pgnOut)
	}
}
