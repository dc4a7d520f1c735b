package patzer

import (
	"testing"

	"github.com/discochess/patzer/internal/eval"
)

func TestSelection_ScoreString(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{score: 0, want: "+0.00"},
		{score: 125, want: "+1.25"},
		{score: -50, want: "-0.50"},
		{score: 905, want: "+9.05"},
		{score: eval.MateScore, want: "#"},
		{score: -eval.MateScore, want: "-#"},
	}

	for _, tt := range tests {
		sel := &Selection{Score: tt.score}
		if got := sel.ScoreString(); got != tt.want {
			t.Errorf("ScoreString() for %d = %q, want %q", tt.score, got, tt.want)
		}
	}
}
