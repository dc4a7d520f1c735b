// Package patzerfx provides an fx module for a patzer engine with metrics
// logged through zap. Useful for development and testing.
package patzerfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/discochess/patzer"
	"github.com/discochess/patzer/internal/stats"
	"github.com/discochess/patzer/internal/stats/logger"
)

// Config controls the provided engine.
type Config struct {
	Elo           int
	EvalCacheSize int
}

// Module provides a patzer engine with logger-backed stats.
// Requires a *zap.Logger and a Config to be provided.
var Module = fx.Module("patzer",
	fx.Provide(
		newStatsCollector,
		newEngine,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("patzer.stats"))
}

// Params holds dependencies for creating the engine.
type Params struct {
	fx.In

	Logger    *zap.Logger
	Collector stats.Collector
	Config    Config
}

func newEngine(p Params) (*patzer.Engine, error) {
	opts := []patzer.Option{
		patzer.WithLogger(p.Logger.Named("patzer")),
		patzer.WithStats(p.Collector),
	}
	if p.Config.Elo != 0 {
		opts = append(opts, patzer.WithElo(p.Config.Elo))
	}
	if p.Config.EvalCacheSize > 0 {
		opts = append(opts, patzer.WithEvalCacheSize(p.Config.EvalCacheSize))
	}
	return patzer.New(opts...)
}
