package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	a := NewMetrics()
	b := NewMetrics()

	a.RowsRead.Add(3)

	families, err := b.Registry().Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == "city_weights_rows_read_total" {
			assert.Zero(t, f.GetMetric()[0].GetCounter().GetValue())
		}
	}
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.RowsRead.Add(4)
	m.RowsDropped.Inc()
	m.DuplicatesCollapsed.Inc()
	m.EntriesWritten.Add(2)
	m.ObserveWeight(3)
	m.ObserveWeight(3)
	m.LastSuccess.Set(1714144200)

	path := filepath.Join(t.TempDir(), "textfile", "cityweights.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "city_weights_rows_read_total 4")
	assert.Contains(t, out, "city_weights_rows_dropped_total 1")
	assert.Contains(t, out, "city_weights_duplicates_collapsed_total 1")
	assert.Contains(t, out, "city_weights_entries_written_total 2")
	assert.Contains(t, out, `city_weights_entries_by_weight_total{weight="3"} 2`)
	assert.Contains(t, out, "# HELP city_weights_run_duration_seconds")
}
