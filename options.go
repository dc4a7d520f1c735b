package patzer

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/discochess/patzer/internal/stats"
)

// DefaultElo is the strength an Engine plays at when WithElo is not given.
const DefaultElo = 1500

// Option configures an Engine.
type Option interface {
	apply(*options)
}

// options holds the engine configuration.
type options struct {
	elo           int
	logger        *zap.Logger
	stats         stats.Collector
	rng           Rand
	evalCacheSize int
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		elo:    DefaultElo,
		logger: zap.NewNop(),
		stats:  stats.NewNoop(),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithElo sets the engine's playing strength on an ELO-like scale.
// Any integer is accepted; out-of-range values clamp to the nearest
// strength band. Default is DefaultElo.
func WithElo(elo int) Option {
	return optionFunc(func(o *options) {
		o.elo = elo
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}

// WithStats sets the stats collector.
// If not set, a no-op collector is used.
func WithStats(c stats.Collector) Option {
	return optionFunc(func(o *options) {
		o.stats = c
	})
}

// WithRandom sets the randomness source used for blunder decisions.
// Injecting a seeded source makes the engine fully deterministic, which is
// how the weakening behavior is exercised in tests. If not set, a
// time-seeded math/rand source is used.
func WithRandom(r Rand) Option {
	return optionFunc(func(o *options) {
		o.rng = r
	})
}

// WithEvalCacheSize enables an LRU memo of static evaluations holding up to
// size entries. The cache stores material scores only, never search results,
// so it cannot change the engine's choice. Default is 0 (disabled).
func WithEvalCacheSize(size int) Option {
	return optionFunc(func(o *options) {
		o.evalCacheSize = size
	})
}
