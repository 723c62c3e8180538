package domain

import (
	"cmp"
	"slices"
)

// Deduplicate keeps one record per city: the one with the largest population,
// the earlier one on exact ties. Survivors are returned in source order.
func Deduplicate(records []CityRecord) []CityRecord {
	byPop := slices.Clone(records)
	slices.SortStableFunc(byPop, func(a, b CityRecord) int {
		return cmp.Compare(b.Population, a.Population)
	})

	seen := make(map[string]struct{}, len(byPop))
	kept := make([]CityRecord, 0, len(byPop))
	for _, rec := range byPop {
		if _, dup := seen[rec.City]; dup {
			continue
		}
		seen[rec.City] = struct{}{}
		kept = append(kept, rec)
	}

	slices.SortFunc(kept, func(a, b CityRecord) int {
		return cmp.Compare(a.Position, b.Position)
	})
	return kept
}
