package xlsx

import (
	"context"
	"errors"
	"fmt"

	"github.com/couchcryptid/city-weights/internal/domain"
	"github.com/xuri/excelize/v2"
)

// Reader loads a city table from one sheet of an .xlsx workbook.
// It implements pipeline.Extractor.
type Reader struct {
	path  string
	sheet string
}

// NewReader creates a Reader. An empty sheet selects the first sheet.
func NewReader(path, sheet string) *Reader {
	return &Reader{path: path, sheet: sheet}
}

// Extract reads the sheet's rows and resolves them into logical columns.
func (r *Reader) Extract(_ context.Context) (domain.Table, error) {
	f, err := excelize.OpenFile(r.path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return domain.Table{}, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return domain.Table{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	table, err := domain.ResolveTable(dropBlankRows(rows))
	if err != nil {
		return domain.Table{}, fmt.Errorf("resolve columns in %s[%s]: %w", r.path, sheet, err)
	}
	return table, nil
}

// dropBlankRows removes rows with no cells, matching how blank CSV lines are
// skipped.
func dropBlankRows(rows [][]string) [][]string {
	out := rows[:0]
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		out = append(out, row)
	}
	return out
}
