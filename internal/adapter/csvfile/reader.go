package csvfile

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/city-weights/internal/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader loads a city table from a CSV file.
// It implements pipeline.Extractor.
type Reader struct {
	path string
}

// NewReader creates a Reader for the CSV file at path.
func NewReader(path string) *Reader {
	return &Reader{path: path}
}

// Extract reads the whole file and resolves it into logical columns.
func (r *Reader) Extract(_ context.Context) (domain.Table, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("read csv: %w", err)
	}

	records, err := ReadRecords(bytes.NewReader(bytes.TrimPrefix(data, utf8BOM)))
	if err != nil {
		return domain.Table{}, fmt.Errorf("parse csv %s: %w", r.path, err)
	}

	table, err := domain.ResolveTable(records)
	if err != nil {
		return domain.Table{}, fmt.Errorf("resolve columns in %s: %w", r.path, err)
	}
	return table, nil
}

// ReadRecords parses CSV records, allowing rows of varying width. Blank lines
// are skipped. A stray quote inside an unquoted field is kept as a literal.
func ReadRecords(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	return cr.ReadAll()
}
