package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyInput is returned when the input has no rows at all.
	ErrEmptyInput = errors.New("input has no rows")

	// ErrMissingColumn is returned when a header row lacks one of the
	// required logical columns.
	ErrMissingColumn = errors.New("missing required column")
)

// Logical column names, in headerless order.
const (
	colCity       = "city"
	colLat        = "lat"
	colLon        = "lon"
	colPopulation = "population"
)

var requiredColumns = [...]string{colCity, colLat, colLon, colPopulation}

// headerAliases maps a normalized header name to its logical column.
var headerAliases = map[string]string{
	"city":       colCity,
	"name":       colCity,
	"lat":        colLat,
	"latitude":   colLat,
	"lon":        colLon,
	"longitude":  colLon,
	"population": colPopulation,
	"pop":        colPopulation,
}

// attemptOutcome tags the result of the headerless read.
type attemptOutcome int

const (
	outcomeHeaderless attemptOutcome = iota
	outcomeRetryWithHeader
)

// ResolveTable maps raw records onto the logical columns. It first assigns
// columns by position; if that leaves a non-numeric lat value it re-reads the
// first record as a header.
func ResolveTable(records [][]string) (Table, error) {
	if len(records) == 0 {
		return Table{}, ErrEmptyInput
	}

	rows, outcome := readHeaderless(records)
	if outcome == outcomeHeaderless {
		return Table{Rows: rows, Schema: SchemaHeaderless}, nil
	}

	rows, err := readWithHeader(records)
	if err != nil {
		return Table{}, err
	}
	return Table{Rows: rows, Schema: SchemaHeader}, nil
}

// readHeaderless assigns city, lat, lon, population by position. The result is
// only accepted when every present lat value parses as a number.
func readHeaderless(records [][]string) ([]RawCityRow, attemptOutcome) {
	rows := make([]RawCityRow, 0, len(records))
	for i, rec := range records {
		row := RawCityRow{
			City:       field(rec, 0),
			Lat:        field(rec, 1),
			Lon:        field(rec, 2),
			Population: field(rec, 3),
			Position:   i,
		}
		if !isMissing(row.Lat) && !isNumeric(row.Lat) {
			return nil, outcomeRetryWithHeader
		}
		rows = append(rows, row)
	}
	return rows, outcomeHeaderless
}

// readWithHeader treats records[0] as column names and resolves aliases.
// The first header matching a logical column wins.
func readWithHeader(records [][]string) ([]RawCityRow, error) {
	idx := make(map[string]int, len(requiredColumns))
	for i, name := range records[0] {
		logical, ok := headerAliases[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		if _, seen := idx[logical]; !seen {
			idx[logical] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	data := records[1:]
	rows := make([]RawCityRow, 0, len(data))
	for i, rec := range data {
		rows = append(rows, RawCityRow{
			City:       field(rec, idx[colCity]),
			Lat:        field(rec, idx[colLat]),
			Lon:        field(rec, idx[colLon]),
			Population: field(rec, idx[colPopulation]),
			Position:   i,
		})
	}
	return rows, nil
}

func field(rec []string, i int) string {
	if i >= len(rec) {
		return ""
	}
	return rec[i]
}
