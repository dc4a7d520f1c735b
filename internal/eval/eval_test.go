package eval

import (
	"testing"

	"github.com/notnil/chess"
)

// mustPosition builds a position from a FEN string or fails the test.
func mustPosition(t *testing.T, fenStr string) *chess.Position {
	t.Helper()
	fn, err := chess.FEN(fenStr)
	if err != nil {
		t.Fatalf("FEN(%q) error = %v", fenStr, err)
	}
	return chess.NewGame(fn).Position()
}

func TestEvaluate_StartingPositionIsBalanced(t *testing.T) {
	if got := Evaluate(chess.StartingPosition()); got != 0 {
		t.Errorf("Evaluate(start) = %d, want 0", got)
	}
}

func TestEvaluate_Material(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{
			name: "missing black queen",
			fen:  "rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			want: 900,
		},
		{
			name: "lone white rook",
			fen:  "4k3/8/8/8/8/8/8/R3K3 w - - 0 1",
			want: 500,
		},
		{
			name: "black up a knight and pawn",
			fen:  "rnbqkbnr/pppppppp/8/8/8/8/1PPPPPPP/R1BQKBNR w KQkq - 0 1",
			want: -420,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(mustPosition(t, tt.fen)); got != tt.want {
				t.Errorf("Evaluate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEvaluate_Checkmate(t *testing.T) {
	// Fool's mate: White is to move and has been mated.
	whiteMated := mustPosition(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if got := Evaluate(whiteMated); got != -MateScore {
		t.Errorf("Evaluate(white mated) = %d, want %d", got, -MateScore)
	}

	// Scholar's mate: Black is to move and has been mated.
	blackMated := mustPosition(t, "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNBQK1NR b KQkq - 0 4")
	if got := Evaluate(blackMated); got != MateScore {
		t.Errorf("Evaluate(black mated) = %d, want %d", got, MateScore)
	}
}

func TestEvaluate_Stalemate(t *testing.T) {
	stalemate := mustPosition(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if got := Evaluate(stalemate); got != 0 {
		t.Errorf("Evaluate(stalemate) = %d, want 0", got)
	}
}

func TestCached_MatchesEvaluate(t *testing.T) {
	cached, err := NewCached(16)
	if err != nil {
		t.Fatalf("NewCached() error = %v", err)
	}

	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"4k3/8/8/8/8/8/8/R3K3 w - - 0 1",
	}

	for _, fenStr := range fens {
		pos := mustPosition(t, fenStr)
		want := Evaluate(pos)

		// Twice: the second call must come from the cache with the same score.
		if got := cached.Evaluate(pos); got != want {
			t.Errorf("Cached.Evaluate(%q) = %d, want %d", fenStr, got, want)
		}
		if got := cached.Evaluate(pos); got != want {
			t.Errorf("Cached.Evaluate(%q) second call = %d, want %d", fenStr, got, want)
		}
	}

	if cached.Hits() != int64(len(fens)) {
		t.Errorf("Hits() = %d, want %d", cached.Hits(), len(fens))
	}
	if cached.Misses() != int64(len(fens)) {
		t.Errorf("Misses() = %d, want %d", cached.Misses(), len(fens))
	}
}
