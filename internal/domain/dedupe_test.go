package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeduplicate(t *testing.T) {
	t.Run("keeps the largest population", func(t *testing.T) {
		records := []CityRecord{
			{City: "X", Lat: 1, Lon: 1, Population: 1000, Position: 0},
			{City: "X", Lat: 2, Lon: 2, Population: 5000, Position: 1},
		}

		got := Deduplicate(records)

		require.Len(t, got, 1)
		assert.Equal(t, records[1], got[0])
	})

	t.Run("preserves source order without duplicates", func(t *testing.T) {
		records := []CityRecord{
			{City: "B", Population: 10, Position: 0},
			{City: "A", Population: 20, Position: 1},
		}

		got := Deduplicate(records)

		assert.Equal(t, records, got)
	})

	t.Run("survivor keeps its own position", func(t *testing.T) {
		records := []CityRecord{
			{City: "X", Population: 1, Position: 0},
			{City: "Y", Population: 1, Position: 1},
			{City: "X", Population: 9, Position: 2},
		}

		got := Deduplicate(records)

		want := []CityRecord{
			{City: "Y", Population: 1, Position: 1},
			{City: "X", Population: 9, Position: 2},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("dedupe mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("exact tie keeps the earlier row", func(t *testing.T) {
		records := []CityRecord{
			{City: "X", Lat: 1, Population: 50, Position: 0},
			{City: "X", Lat: 2, Population: 50, Position: 1},
		}

		got := Deduplicate(records)

		require.Len(t, got, 1)
		assert.Equal(t, 1.0, got[0].Lat)
	})

	t.Run("names are case-sensitive", func(t *testing.T) {
		records := []CityRecord{
			{City: "paris", Population: 1, Position: 0},
			{City: "Paris", Population: 2, Position: 1},
		}

		assert.Len(t, Deduplicate(records), 2)
	})

	t.Run("does not modify input", func(t *testing.T) {
		records := []CityRecord{
			{City: "A", Population: 1, Position: 0},
			{City: "B", Population: 2, Position: 1},
		}
		before := append([]CityRecord(nil), records...)

		Deduplicate(records)

		assert.Equal(t, before, records)
	})
}
