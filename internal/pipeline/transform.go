package pipeline

import (
	"log/slog"

	"github.com/couchcryptid/city-weights/internal/domain"
)

// TransformStats counts what each transform stage removed.
type TransformStats struct {
	RowsRead   int
	Dropped    int
	Duplicates int
}

// CityTransformer turns a resolved table into annotated entries using the
// domain normalize, dedupe and annotate functions.
type CityTransformer struct {
	logger *slog.Logger
}

// NewTransformer creates a CityTransformer.
func NewTransformer(logger *slog.Logger) *CityTransformer {
	return &CityTransformer{logger: logger}
}

func (t *CityTransformer) Transform(table domain.Table) ([]domain.CityEntry, TransformStats) {
	stats := TransformStats{RowsRead: len(table.Rows)}

	records := domain.Normalize(table.Rows)
	stats.Dropped = len(table.Rows) - len(records)
	if stats.Dropped > 0 {
		t.logger.Debug("dropped rows with missing or non-numeric fields", "count", stats.Dropped)
	}

	unique := domain.Deduplicate(records)
	stats.Duplicates = len(records) - len(unique)
	if stats.Duplicates > 0 {
		t.logger.Debug("collapsed duplicate city names", "count", stats.Duplicates)
	}

	return domain.Annotate(unique), stats
}
