// Package search implements fixed-depth negamax with alpha-beta pruning.
package search

import (
	"context"
	"fmt"

	"github.com/notnil/chess"

	"github.com/discochess/patzer/internal/order"
)

// Infinity bounds the alpha-beta window. It is safely negatable and larger
// than any score the evaluator can produce.
const Infinity = 1 << 30

// EvalFunc scores a position in centipawns from White's perspective.
type EvalFunc func(*chess.Position) int

// Searcher runs one top-level search and counts the work it does.
// A Searcher is not safe for concurrent use; create one per decision.
type Searcher struct {
	eval    EvalFunc
	nodes   int64
	cutoffs int64
}

// New creates a Searcher that scores leaves with eval.
func New(eval EvalFunc) *Searcher {
	return &Searcher{eval: eval}
}

// Negamax returns the best score achievable from pos when searched to the
// given depth, expressed from perspective's point of view (positive is good
// for perspective). alpha and beta bound the window; callers start with
// (-Infinity, Infinity).
//
// Positions reached during the search are fresh copies produced by the rules
// engine, so pos itself is never mutated. Cancellation is checked once per
// node; a canceled context aborts the whole search.
func (s *Searcher) Negamax(ctx context.Context, pos *chess.Position, depth, alpha, beta int, perspective chess.Color) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("search canceled: %w", err)
	}
	s.nodes++

	if depth <= 0 || pos.Status() != chess.NoMethod {
		score := s.eval(pos)
		if perspective == chess.Black {
			score = -score
		}
		return score, nil
	}

	max := -Infinity
	for _, m := range order.CapturesFirst(pos.ValidMoves()) {
		score, err := s.Negamax(ctx, pos.Update(m), depth-1, -beta, -alpha, perspective.Other())
		if err != nil {
			return 0, err
		}
		score = -score

		if score > max {
			max = score
		}
		if max > alpha {
			alpha = max
		}
		if alpha >= beta {
			s.cutoffs++
			break
		}
	}
	return max, nil
}

// Nodes returns the number of nodes visited so far.
func (s *Searcher) Nodes() int64 { return s.nodes }

// Cutoffs returns the number of beta cutoffs taken so far.
func (s *Searcher) Cutoffs() int64 { return s.cutoffs }
