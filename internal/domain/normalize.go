package domain

import (
	"math"
	"strconv"
	"strings"
)

// Normalize coerces lat, lon and population to numbers and drops rows that are
// missing a city or any numeric value. Dropped rows are not reported.
func Normalize(rows []RawCityRow) []CityRecord {
	out := make([]CityRecord, 0, len(rows))
	for _, row := range rows {
		rec, ok := normalizeRow(row)
		if !ok {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func normalizeRow(row RawCityRow) (CityRecord, bool) {
	if isMissing(row.City) {
		return CityRecord{}, false
	}
	lat, ok := parseNumber(row.Lat)
	if !ok {
		return CityRecord{}, false
	}
	lon, ok := parseNumber(row.Lon)
	if !ok {
		return CityRecord{}, false
	}
	pop, ok := parseNumber(row.Population)
	if !ok {
		return CityRecord{}, false
	}
	return CityRecord{
		City:       row.City,
		Lat:        lat,
		Lon:        lon,
		Population: pop,
		Position:   row.Position,
	}, true
}

// naValues are the cell values read as missing rather than as text.
var naValues = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

func isMissing(s string) bool {
	_, ok := naValues[strings.TrimSpace(s)]
	return ok
}

// isNumeric reports whether s parses as a float, infinities included.
func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// parseNumber parses a trimmed decimal or scientific number. Empty strings and
// non-finite values are reported as missing.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
