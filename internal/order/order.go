// Package order provides move-ordering heuristics for alpha-beta search.
package order

import "github.com/notnil/chess"

// CapturesFirst returns moves with every capture ahead of every quiet move.
// Relative order within each group is preserved and the input slice is not
// modified. Ordering is a pruning heuristic only; it never changes which
// score the search returns.
func CapturesFirst(moves []*chess.Move) []*chess.Move {
	ordered := make([]*chess.Move, 0, len(moves))
	for _, m := range moves {
		if IsCapture(m) {
			ordered = append(ordered, m)
		}
	}
	for _, m := range moves {
		if !IsCapture(m) {
			ordered = append(ordered, m)
		}
	}
	return ordered
}

// IsCapture reports whether m takes an enemy piece, en passant included.
func IsCapture(m *chess.Move) bool {
	return m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant)
}
