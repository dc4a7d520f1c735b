package order

import (
	"testing"

	"github.com/notnil/chess"
)

// positionAfterE4D5 has exactly one capture available for White (exd5).
func positionAfterE4D5(t *testing.T) *chess.Position {
	t.Helper()
	fn, err := chess.FEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2")
	if err != nil {
		t.Fatalf("FEN() error = %v", err)
	}
	return chess.NewGame(fn).Position()
}

func TestCapturesFirst_PutsCapturesAhead(t *testing.T) {
	moves := positionAfterE4D5(t).ValidMoves()
	ordered := CapturesFirst(moves)

	if len(ordered) != len(moves) {
		t.Fatalf("CapturesFirst() returned %d moves, want %d", len(ordered), len(moves))
	}

	seenQuiet := false
	captures := 0
	for _, m := range ordered {
		if IsCapture(m) {
			captures++
			if seenQuiet {
				t.Fatalf("capture %s ordered after a quiet move", m)
			}
		} else {
			seenQuiet = true
		}
	}

	if captures == 0 {
		t.Fatal("position should have at least one capture")
	}
}

func TestCapturesFirst_SameMultiset(t *testing.T) {
	moves := positionAfterE4D5(t).ValidMoves()
	ordered := CapturesFirst(moves)

	counts := make(map[string]int)
	for _, m := range moves {
		counts[m.String()]++
	}
	for _, m := range ordered {
		counts[m.String()]--
	}
	for mv, n := range counts {
		if n != 0 {
			t.Errorf("move %s count off by %d after ordering", mv, n)
		}
	}
}

func TestCapturesFirst_PreservesQuietOrder(t *testing.T) {
	moves := chess.StartingPosition().ValidMoves()
	ordered := CapturesFirst(moves)

	// No captures exist in the starting position, so ordering must be the
	// identity.
	for i := range moves {
		if ordered[i] != moves[i] {
			t.Fatalf("ordering changed quiet move order at index %d", i)
		}
	}
}

func TestCapturesFirst_DoesNotModifyInput(t *testing.T) {
	moves := positionAfterE4D5(t).ValidMoves()
	before := make([]*chess.Move, len(moves))
	copy(before, moves)

	CapturesFirst(moves)

	for i := range moves {
		if moves[i] != before[i] {
			t.Fatalf("input slice modified at index %d", i)
		}
	}
}
