// Package stats provides a unified interface for collecting engine metrics.
package stats

// Metric names used throughout the engine.
const (
	// Selection metrics.
	MetricSelections     = "patzer_selections_total"
	MetricBlunders       = "patzer_blunders_total"
	MetricSelectDuration = "patzer_select_duration_seconds"

	// Search metrics.
	MetricNodes   = "patzer_nodes_total"
	MetricCutoffs = "patzer_cutoffs_total"

	// Evaluation cache metrics.
	MetricEvalCacheHits   = "patzer_eval_cache_hits_total"
	MetricEvalCacheMisses = "patzer_eval_cache_misses_total"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
