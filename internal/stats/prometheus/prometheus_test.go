package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/discochess/patzer/internal/stats"
)

func TestCollector_Counters(t *testing.T) {
	registry := prometheus.NewRegistry()
	c, err := New(registry)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c.IncCounter(stats.MetricSelections, 1)
	c.IncCounter(stats.MetricSelections, 2)
	c.IncCounter(stats.MetricNodes, 100)

	if got := testutil.ToFloat64(c.counters[stats.MetricSelections]); got != 3 {
		t.Errorf("%s = %v, want 3", stats.MetricSelections, got)
	}
	if got := testutil.ToFloat64(c.counters[stats.MetricNodes]); got != 100 {
		t.Errorf("%s = %v, want 100", stats.MetricNodes, got)
	}
}

func TestCollector_Gauges(t *testing.T) {
	registry := prometheus.NewRegistry()
	c, err := New(registry)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	c.SetGauge(stats.MetricEvalCacheHits, 5)
	c.SetGauge(stats.MetricEvalCacheHits, 9)

	if got := testutil.ToFloat64(c.gauges[stats.MetricEvalCacheHits]); got != 9 {
		t.Errorf("%s = %v, want 9", stats.MetricEvalCacheHits, got)
	}
}

func TestCollector_UnknownMetricDropped(t *testing.T) {
	registry := prometheus.NewRegistry()
	c, err := New(registry)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Must not panic or register anything new.
	c.IncCounter("patzer_unknown_total", 1)
	c.SetGauge("patzer_unknown", 1)
	c.ObserveHistogram("patzer_unknown_seconds", 1)
}

func TestNew_DuplicateRegistration(t *testing.T) {
	registry := prometheus.NewRegistry()
	if _, err := New(registry); err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, err := New(registry); err == nil {
		t.Fatal("New() on the same registry twice returned nil error")
	}
}
