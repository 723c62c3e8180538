package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/city-weights/internal/domain"
	"github.com/couchcryptid/city-weights/internal/observability"
)

// Extractor loads the raw city table from the source.
type Extractor interface {
	Extract(ctx context.Context) (domain.Table, error)
}

// Sink receives the final annotated entries.
type Sink interface {
	Write(ctx context.Context, entries []domain.CityEntry) error
}

// Summary describes one completed run.
type Summary struct {
	RowsRead   int
	Dropped    int
	Duplicates int
	Entries    int
	Schema     domain.SchemaMode
	Duration   time.Duration
}

// Pipeline orchestrates the extract-transform-load pass.
type Pipeline struct {
	extractor   Extractor
	transformer *CityTransformer
	sinks       []Sink
	logger      *slog.Logger
	metrics     *observability.Metrics
}

// New creates a Pipeline. Sinks are written in order.
func New(e Extractor, t *CityTransformer, logger *slog.Logger, metrics *observability.Metrics, sinks ...Sink) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		sinks:       sinks,
		logger:      logger,
		metrics:     metrics,
	}
}

// Run executes a single conversion. The first sink error aborts the run and
// later sinks are not written.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	start := domain.Now()

	table, err := p.extractor.Extract(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("extract: %w", err)
	}
	p.logger.Info("input loaded", "rows", len(table.Rows), "schema", table.Schema)

	entries, stats := p.transformer.Transform(table)
	summary := Summary{
		RowsRead:   stats.RowsRead,
		Dropped:    stats.Dropped,
		Duplicates: stats.Duplicates,
		Entries:    len(entries),
		Schema:     table.Schema,
	}
	p.metrics.RowsRead.Add(float64(stats.RowsRead))
	p.metrics.RowsDropped.Add(float64(stats.Dropped))
	p.metrics.DuplicatesCollapsed.Add(float64(stats.Duplicates))

	for _, sink := range p.sinks {
		if err := sink.Write(ctx, entries); err != nil {
			summary.Duration = domain.Since(start)
			p.metrics.RunDuration.Set(summary.Duration.Seconds())
			return summary, fmt.Errorf("load: %w", err)
		}
	}

	p.metrics.EntriesWritten.Add(float64(len(entries)))
	for i := range entries {
		p.metrics.ObserveWeight(entries[i].Weight)
	}
	summary.Duration = domain.Since(start)
	p.metrics.RunDuration.Set(summary.Duration.Seconds())
	p.metrics.LastSuccess.Set(float64(domain.Now().Unix()))

	p.logger.Info("conversion complete",
		"rows", summary.RowsRead,
		"dropped", summary.Dropped,
		"duplicates", summary.Duplicates,
		"entries", summary.Entries,
		"duration", summary.Duration,
	)
	return summary, nil
}
