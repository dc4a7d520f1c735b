// Package patzer selects chess moves with tunable playing strength.
//
// The engine searches with fixed-depth negamax and alpha-beta pruning over
// a material-only evaluation, then optionally weakens its choice according
// to an ELO-like strength setting. Legal moves, position transitions and
// terminal detection come from github.com/notnil/chess; patzer never builds
// or mutates board state itself.
//
// Example usage:
//
//	eng, err := patzer.New(patzer.WithElo(1500))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sel, err := eng.SelectMove(ctx, game.Position())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("playing %s (%s)\n", sel.Move, sel.ScoreString())
package patzer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/notnil/chess"
	"go.uber.org/zap"

	"github.com/discochess/patzer/internal/eval"
	"github.com/discochess/patzer/internal/order"
	"github.com/discochess/patzer/internal/search"
	"github.com/discochess/patzer/internal/stats"
	"github.com/discochess/patzer/internal/strength"
)

// ErrNoLegalMoves indicates the position has no legal move: the game is
// already over. Calling SelectMove on such a position is safe and simply
// returns this error.
var ErrNoLegalMoves = errors.New("patzer: no legal moves")

// blunderCandidates is how many of the shallowly-best moves the engine
// picks among when it deliberately plays a weaker move.
const blunderCandidates = 4

// Rand is the source of randomness used for blunder decisions.
// *math/rand.Rand implements it.
type Rand interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// Engine selects moves at a configurable strength.
// An Engine is safe for concurrent use by multiple goroutines.
type Engine struct {
	elo    int
	logger *zap.Logger
	stats  stats.Collector
	evalFn search.EvalFunc
	cache  *eval.Cached

	mu  sync.Mutex // guards rng
	rng Rand
}

// New creates a new Engine with the given options.
// If no options are provided, sensible defaults are used.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	e := &Engine{
		elo:    cfg.elo,
		logger: cfg.logger,
		stats:  cfg.stats,
		rng:    cfg.rng,
		evalFn: eval.Evaluate,
	}

	if cfg.evalCacheSize > 0 {
		cached, err := eval.NewCached(cfg.evalCacheSize)
		if err != nil {
			return nil, fmt.Errorf("creating eval cache: %w", err)
		}
		e.cache = cached
		e.evalFn = cached.Evaluate
	}

	e.logger.Debug("engine initialized",
		zap.Int("elo", e.elo),
		zap.Int("evalCacheSize", cfg.evalCacheSize),
	)

	return e, nil
}

// Elo returns the engine's configured strength setting.
func (e *Engine) Elo() int {
	return e.elo
}

// SelectMove picks a move for the side to move in pos, playing at the
// engine's configured strength. Returns ErrNoLegalMoves if the position has
// no legal move. The input position is never mutated.
func (e *Engine) SelectMove(ctx context.Context, pos *chess.Position) (*Selection, error) {
	return e.SelectMoveElo(ctx, pos, e.elo)
}

// SelectMoveElo is SelectMove with a per-call strength override. The elo
// value may be any integer; out-of-range values clamp to the nearest
// strength band.
func (e *Engine) SelectMoveElo(ctx context.Context, pos *chess.Position, elo int) (*Selection, error) {
	start := time.Now()

	moves := pos.ValidMoves()
	if len(moves) == 0 {
		return nil, ErrNoLegalMoves
	}

	params := strength.ForElo(elo)
	mover := pos.Turn()
	searcher := search.New(e.evalFn)

	best, bestScore, err := e.bestMove(ctx, searcher, pos, moves, params.Depth, mover)
	if err != nil {
		return nil, err
	}

	sel := &Selection{
		Move:    best,
		Score:   bestScore,
		Depth:   params.Depth,
		Nodes:   searcher.Nodes(),
		Cutoffs: searcher.Cutoffs(),
	}

	if e.rollBlunder(params.BlunderProbability) {
		sel.Move = e.blunderMove(pos, moves, mover)
		sel.Blunder = true
	}

	e.report(sel, time.Since(start))

	e.logger.Debug("move selected",
		zap.Int("elo", elo),
		zap.Int("depth", params.Depth),
		zap.String("move", sel.Move.String()),
		zap.Int("score", sel.Score),
		zap.Int64("nodes", sel.Nodes),
		zap.Bool("blunder", sel.Blunder),
	)

	return sel, nil
}

// bestMove runs a full-depth search below every legal move and returns the
// first move maximizing the resulting score from mover's perspective.
func (e *Engine) bestMove(ctx context.Context, searcher *search.Searcher, pos *chess.Position, moves []*chess.Move, depth int, mover chess.Color) (*chess.Move, int, error) {
	var best *chess.Move
	bestScore := -search.Infinity

	for _, m := range order.CapturesFirst(moves) {
		score, err := searcher.Negamax(ctx, pos.Update(m), depth-1, -search.Infinity, search.Infinity, mover.Other())
		if err != nil {
			return nil, 0, err
		}
		score = -score

		if best == nil || score > bestScore {
			best = m
			bestScore = score
		}
	}

	if best == nil {
		// No move was scored. Cannot happen with a positive depth, but the
		// selector still has to produce a legal move.
		best = moves[e.intn(len(moves))]
		bestScore = 0
	}
	return best, bestScore, nil
}

// blunderMove deliberately picks a weaker move: every legal move is scored
// by a single static evaluation of the resulting position (ignoring any
// reply), and one of the top candidates is chosen uniformly. The one-ply
// horizon is the point: it is how low-strength play stays plausible without
// being random.
func (e *Engine) blunderMove(pos *chess.Position, moves []*chess.Move, mover chess.Color) *chess.Move {
	type scoredMove struct {
		move  *chess.Move
		score int
	}

	scored := make([]scoredMove, 0, len(moves))
	for _, m := range moves {
		score := e.evalFn(pos.Update(m))
		if mover == chess.Black {
			score = -score
		}
		scored = append(scored, scoredMove{move: m, score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	k := blunderCandidates
	if len(scored) < k {
		k = len(scored)
	}
	return scored[e.intn(k)].move
}

// rollBlunder reports whether this decision should be weakened.
func (e *Engine) rollBlunder(probability float64) bool {
	if probability <= 0 {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Float64() < probability
}

func (e *Engine) intn(n int) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rng.Intn(n)
}

// report publishes metrics for one completed decision.
func (e *Engine) report(sel *Selection, elapsed time.Duration) {
	e.stats.IncCounter(stats.MetricSelections, 1)
	e.stats.IncCounter(stats.MetricNodes, sel.Nodes)
	e.stats.IncCounter(stats.MetricCutoffs, sel.Cutoffs)
	if sel.Blunder {
		e.stats.IncCounter(stats.MetricBlunders, 1)
	}
	e.stats.ObserveHistogram(stats.MetricSelectDuration, elapsed.Seconds())
	if e.cache != nil {
		e.stats.SetGauge(stats.MetricEvalCacheHits, e.cache.Hits())
		e.stats.SetGauge(stats.MetricEvalCacheMisses, e.cache.Misses())
	}
}
