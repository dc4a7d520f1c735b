package simulation

import (
	"context"
	"strings"
	"testing"
)

func TestNew_RequiresGames(t *testing.T) {
	if _, err := New(Config{WhiteElo: 500, BlackElo: 500}); err == nil {
		t.Fatal("New() with zero games returned nil error")
	}
}

func TestSimulator_Run(t *testing.T) {
	sim, err := New(Config{
		WhiteElo: 500,
		BlackElo: 500,
		Games:    2,
		MaxPlies: 30,
		Seed:     42,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	summary, err := sim.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(summary.Records) != 2 {
		t.Fatalf("Run() produced %d records, want 2", len(summary.Records))
	}
	if summary.WhiteWins+summary.BlackWins+summary.Draws != 2 {
		t.Errorf("result counts %d+%d+%d do not sum to 2",
			summary.WhiteWins, summary.BlackWins, summary.Draws)
	}

	for i, rec := range summary.Records {
		if rec.ID == "" {
			t.Errorf("record %d has empty ID", i)
		}
		if rec.Plies == 0 {
			t.Errorf("record %d has zero plies", i)
		}
		if rec.Plies > 30 {
			t.Errorf("record %d played %d plies, cap is 30", i, rec.Plies)
		}
		if rec.Nodes == 0 {
			t.Errorf("record %d searched zero nodes", i)
		}
		if !strings.Contains(rec.PGN, "1.") {
			t.Errorf("record %d PGN looks empty: %q", i, rec.PGN)
		}
	}

	score := summary.WhiteScore()
	if score < 0 || score > 1 {
		t.Errorf("WhiteScore() = %v, want within [0,1]", score)
	}
}

func TestResult_Score(t *testing.T) {
	if WhiteWin.Score() != 1 || BlackWin.Score() != 0 || Draw.Score() != 0.5 {
		t.Error("Result.Score() mapping is wrong")
	}
}

func TestResult_String(t *testing.T) {
	if WhiteWin.String() != "1-0" || BlackWin.String() != "0-1" || Draw.String() != "1/2-1/2" {
		t.Error("Result.String() mapping is wrong")
	}
}
