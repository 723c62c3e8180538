package domain

// threshold pairs an upper bound with the value returned below (or at) it.
type threshold[T int | float64] struct {
	bound  T
	result int
}

// populationBuckets is scanned in order; the first bound the population is
// strictly below wins.
var populationBuckets = [...]threshold[float64]{
	{20_000, 1},
	{50_000, 2},
	{120_000, 3},
	{250_000, 4},
	{500_000, 5},
	{1_000_000, 7},
	{3_000_000, 10},
	{8_000_000, 16},
}

const maxWeight = 23

// sigmaBuckets is scanned in order; the first bound the weight is at or below
// wins.
var sigmaBuckets = [...]threshold[int]{
	{2, 5},
	{5, 10},
	{9, 12},
	{16, 14},
}

const maxSigmaKm = 16

// Weight maps a population to its weight bucket.
func Weight(population float64) int {
	for _, t := range populationBuckets {
		if population < t.bound {
			return t.result
		}
	}
	return maxWeight
}

// SigmaKm maps a weight to the smoothing radius in kilometres.
func SigmaKm(weight int) int {
	for _, t := range sigmaBuckets {
		if weight <= t.bound {
			return t.result
		}
	}
	return maxSigmaKm
}

// Weights lists every value Weight can return, ascending.
func Weights() []int {
	out := make([]int, 0, len(populationBuckets)+1)
	for _, t := range populationBuckets {
		out = append(out, t.result)
	}
	return append(out, maxWeight)
}

// SigmaValues lists every value SigmaKm can return, ascending.
func SigmaValues() []int {
	out := make([]int, 0, len(sigmaBuckets)+1)
	for _, t := range sigmaBuckets {
		out = append(out, t.result)
	}
	return append(out, maxSigmaKm)
}
