package patzer

import (
	"strconv"

	"github.com/notnil/chess"

	"github.com/discochess/patzer/internal/eval"
)

// Selection is the result of one move decision.
type Selection struct {
	// Move is the move the engine chose to play.
	Move *chess.Move

	// Score is the search score of the best move found, in centipawns from
	// the mover's perspective. When Blunder is set the played move was
	// substituted after the search, so it may be weaker than Score suggests.
	Score int

	// Depth is the search depth used for this decision.
	Depth int

	// Blunder reports whether the engine deliberately discarded the best
	// move in favor of a shallowly-chosen alternative.
	Blunder bool

	// Nodes is the number of search nodes visited.
	Nodes int64

	// Cutoffs is the number of beta cutoffs taken during the search.
	Cutoffs int64
}

// ScoreString returns a human-readable score for the best line found.
// Examples: "+1.25", "-0.50", "#", "-#"
func (s *Selection) ScoreString() string {
	cp := s.Score
	if cp >= eval.MateScore {
		return "#"
	}
	if cp <= -eval.MateScore {
		return "-#"
	}

	sign := "+"
	if cp < 0 {
		sign = "-"
		cp = -cp
	}
	whole := cp / 100
	frac := cp % 100
	if frac < 10 {
		return sign + strconv.Itoa(whole) + ".0" + strconv.Itoa(frac)
	}
	return sign + strconv.Itoa(whole) + "." + strconv.Itoa(frac)
}
