package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/couchcryptid/city-weights/internal/adapter/csvfile"
	"github.com/couchcryptid/city-weights/internal/adapter/jsonfile"
	"github.com/couchcryptid/city-weights/internal/domain"
	"github.com/couchcryptid/city-weights/internal/observability"
	"github.com/couchcryptid/city-weights/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixtureDir = filepath.Join("..", "..", "data", "mock")

func TestPipeline_MockFixture(t *testing.T) {
	want, err := os.ReadFile(filepath.Join(fixtureDir, "cities.json"))
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "cities.json")
	run := func() pipeline.Summary {
		p := pipeline.New(
			csvfile.NewReader(filepath.Join(fixtureDir, "cities.csv")),
			pipeline.NewTransformer(discardLogger()),
			discardLogger(),
			observability.NewMetrics(),
			jsonfile.NewWriter(out),
		)
		summary, err := p.Run(context.Background())
		require.NoError(t, err)
		return summary
	}

	summary := run()
	assert.Equal(t, domain.SchemaHeader, summary.Schema)
	assert.Equal(t, 12, summary.RowsRead)
	assert.Equal(t, 3, summary.Dropped)
	assert.Equal(t, 1, summary.Duplicates)
	assert.Equal(t, 8, summary.Entries)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))

	// A second run over the same input must be byte-identical.
	run()
	again, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}
