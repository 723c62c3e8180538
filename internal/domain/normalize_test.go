package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	rows := []RawCityRow{
		{City: "Springfield", Lat: "39.78", Lon: "-89.64", Population: "116250", Position: 0},
		{City: "Badlat", Lat: "abc", Lon: "1", Population: "10", Position: 1},
		{City: "", Lat: "1", Lon: "1", Population: "10", Position: 2},
		{City: "NoPop", Lat: "1", Lon: "1", Population: "", Position: 3},
		{City: "Spaced", Lat: " 1.5 ", Lon: "2e1", Population: " 300 ", Position: 4},
		{City: "Infinite", Lat: "1", Lon: "1", Population: "inf", Position: 5},
		{City: "NA", Lat: "1", Lon: "1", Population: "1", Position: 6},
		{City: "Negative", Lat: "1", Lon: "1", Population: "-5", Position: 7},
	}

	got := Normalize(rows)

	assert.Equal(t, []CityRecord{
		{City: "Springfield", Lat: 39.78, Lon: -89.64, Population: 116250, Position: 0},
		{City: "Spaced", Lat: 1.5, Lon: 20, Population: 300, Position: 4},
		{City: "Negative", Lat: 1, Lon: 1, Population: -5, Position: 7},
	}, got)
}

func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, Normalize(nil))
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"integer", "42", 42, true},
		{"decimal", "-89.64", -89.64, true},
		{"scientific", "1e6", 1_000_000, true},
		{"padded", "  7.5 ", 7.5, true},
		{"empty", "", 0, false},
		{"blank", "   ", 0, false},
		{"text", "abc", 0, false},
		{"thousands separator", "1,000", 0, false},
		{"nan", "NaN", 0, false},
		{"infinity", "-Inf", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsMissing(t *testing.T) {
	for _, v := range []string{"", " ", "NA", "N/A", "null", "None", "nan", "<NA>"} {
		assert.True(t, isMissing(v), "%q", v)
	}
	for _, v := range []string{"0", "Nashville", "none", "abc"} {
		assert.False(t, isMissing(v), "%q", v)
	}
}
