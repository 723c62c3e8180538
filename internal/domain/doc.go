// Package domain turns a table of cities into weighted heatmap seeds.
//
// # Input
//
// The input is a CSV (or an .xlsx sheet) with four logical columns:
//
//	city, lat, lon, population
//
// Two shapes are accepted. The common one has no header and the columns in
// exactly that order:
//
//	Springfield,39.78,-89.64,116250
//
// The other carries a header row whose names are matched case-insensitively
// after trimming, with these aliases:
//
//	city       ← city, name
//	lat        ← lat, latitude
//	lon        ← lon, longitude
//	population ← population, pop
//
// Extra columns are ignored. The shape is decided by [ResolveTable]: the table
// is first read as headerless, and only if some non-empty lat value fails to
// parse as a number is the first row re-read as a header.
//
// # Row handling
//
// Rows with an empty city, or with a lat, lon or population that is not a
// finite number, are dropped without any warning ([Normalize]).
//
// When several rows share a city name the one with the largest population wins
// and carries its own lat/lon. Surviving rows keep the order of their source
// position ([Deduplicate]).
//
// # Weight and sigma
//
// Population maps to a coarse weight bucket, and the weight maps to a smoothing
// radius in kilometres. Both lookups scan ordered tables and the first matching
// bound wins:
//
//	population  <20k  <50k  <120k  <250k  <500k  <1M  <3M  <8M  ≥8M
//	weight        1     2     3      4      5     7   10   16   23
//
//	weight      ≤2  ≤5  ≤9  ≤16  >16
//	sigmaKm      5  10  12   14   16
//
// Negative or zero populations fall in the first bucket. See [Weight] and
// [SigmaKm].
//
// # Output
//
// [SerializeEntries] writes a JSON array with 2-space indentation:
//
//	[
//	  {
//	    "name": "Springfield",
//	    "lat": 39.78,
//	    "lng": -89.64,
//	    "weight": 3,
//	    "sigmaKm": 10
//	  }
//	]
//
// Coordinates are rounded to six decimal places and always carry a fractional
// part, so 40 is written as 40.0.
package domain
