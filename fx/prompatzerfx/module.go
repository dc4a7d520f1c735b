// Package prompatzerfx provides an fx module for a patzer engine that
// publishes metrics to a Prometheus registry.
package prompatzerfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	promclient "github.com/prometheus/client_golang/prometheus"

	"github.com/discochess/patzer"
	"github.com/discochess/patzer/internal/stats"
	"github.com/discochess/patzer/internal/stats/prometheus"
)

// Config controls the provided engine.
type Config struct {
	Elo           int
	EvalCacheSize int
}

// Module provides a patzer engine with Prometheus-backed stats.
// Requires a *zap.Logger, a prometheus.Registerer and a Config to be
// provided.
var Module = fx.Module("prompatzer",
	fx.Provide(
		newStatsCollector,
		newEngine,
	),
)

func newStatsCollector(registry promclient.Registerer) (stats.Collector, error) {
	return prometheus.New(registry)
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
