package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/couchcryptid/city-weights/internal/domain"
)

// Writer serializes city entries to a JSON file, overwriting it in place.
// It implements pipeline.Sink.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the output file path.
func (w *Writer) Path() string { return w.path }

// Write renders entries and replaces the file contents. Missing parent
// directories are created.
func (w *Writer) Write(ctx context.Context, entries []domain.CityEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := domain.SerializeEntries(entries)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(w.path, data, 0o644); err != nil { //nolint:gosec // output is meant to be world-readable
		return fmt.Errorf("write %s: %w", w.path, err)
	}
	return nil
}
