// Package prometheus provides a Prometheus-based stats collector.
package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/discochess/patzer/internal/stats"
)

// Collector implements stats.Collector using Prometheus metrics.
// All engine metrics are registered up front; observations for unknown
// metric names are dropped.
type Collector struct {
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

// Compile-time check that Collector implements stats.Collector.
var _ stats.Collector = (*Collector)(nil)

// New creates a Prometheus collector with every engine metric registered
// against registry. If registry is nil, prometheus.DefaultRegisterer is used.
func New(registry prometheus.Registerer) (*Collector, error) {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	c := &Collector{
		counters:   make(map[string]prometheus.Counter),
		gauges:     make(map[string]prometheus.Gauge),
		histograms: make(map[string]prometheus.Histogram),
	}

	counterNames := []string{
		stats.MetricSelections,
		stats.MetricBlunders,
		stats.MetricNodes,
		stats.MetricCutoffs,
	}
	for _, name := range counterNames {
		counter := prometheus.NewCounter(prometheus.CounterOpts{
			Name: name,
			Help: name,
		})
		if err := registry.Register(counter); err != nil {
			return nil, fmt.Errorf("registering %s: %w", name, err)
		}
		c.counters[name] = counter
	}

	// The eval cache reports cumulative totals itself, so they surface as
	// gauges rather than counters.
	gaugeNames := []string{
		stats.MetricEvalCacheHits,
		stats.MetricEvalCacheMisses,
	}
	for _, name := range gaugeNames {
		gauge := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: name,
			Help: name,
		})
		if err := registry.Register(gauge); err != nil {
			return nil, fmt.Errorf("registering %s: %w", name, err)
		}
		c.gauges[name] = gauge
	}

	histogram := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    stats.MetricSelectDuration,
		Help:    stats.MetricSelectDuration,
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 12),
	})
	if err := registry.Register(histogram); err != nil {
		return nil, fmt.Errorf("registering %s: %w", stats.MetricSelectDuration, err)
	}
	c.histograms[stats.MetricSelectDuration] = histogram

	return c, nil
}

// IncCounter increments a counter metric.
func (c *Collector) IncCounter(name string, delta int64) {
	if counter, ok := c.counters[name]; ok {
		counter.Add(float64(delta))
	}
}

// SetGauge sets a gauge metric.
func (c *Collector) SetGauge(name string, value int64) {
	if gauge, ok := c.gauges[name]; ok {
		gauge.Set(float64(value))
	}
}

// ObserveHistogram records a value in a histogram.
func (c *Collector) ObserveHistogram(name string, value float64) {
	if histogram, ok := c.histograms[name]; ok {
		histogram.Observe(value)
	}
}
