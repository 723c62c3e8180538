package observability

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "city_weights"

// Metrics holds the Prometheus counters and gauges for a conversion run.
// Each instance owns its registry so a batch run can dump it as a textfile.
type Metrics struct {
	registry *prometheus.Registry

	RowsRead            prometheus.Counter
	RowsDropped         prometheus.Counter
	DuplicatesCollapsed prometheus.Counter
	EntriesWritten      prometheus.Counter
	EntriesByWeight     *prometheus.CounterVec // labels: weight
	RunDuration         prometheus.Gauge
	LastSuccess         prometheus.Gauge
}

// NewMetrics creates the run metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RowsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_read_total",
			Help:      "Data rows read from the input table.",
		}),
		RowsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_dropped_total",
			Help:      "Rows dropped for a missing or non-numeric field.",
		}),
		DuplicatesCollapsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicates_collapsed_total",
			Help:      "Rows removed because a more populous row shares the city name.",
		}),
		EntriesWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_written_total",
			Help:      "Annotated city entries written to the output.",
		}),
		EntriesByWeight: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_by_weight_total",
			Help:      "Annotated city entries by population weight bucket.",
		}, []string{"weight"}),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last conversion run.",
		}),
		LastSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful conversion run.",
		}),
	}

	m.registry.MustRegister(
		m.RowsRead,
		m.RowsDropped,
		m.DuplicatesCollapsed,
		m.EntriesWritten,
		m.EntriesByWeight,
		m.RunDuration,
		m.LastSuccess,
	)

	return m
}

// ObserveWeight records one written entry in its weight bucket.
func (m *Metrics) ObserveWeight(weight int) {
	m.EntriesByWeight.WithLabelValues(strconv.Itoa(weight)).Inc()
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
