package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeight(t *testing.T) {
	tests := []struct {
		name       string
		population float64
		expected   int
	}{
		{"negative", -10, 1},
		{"zero", 0, 1},
		{"just below 20k", 19_999, 1},
		{"edge 20k", 20_000, 2},
		{"edge 50k", 50_000, 3},
		{"springfield", 116_250, 3},
		{"edge 120k", 120_000, 4},
		{"edge 250k", 250_000, 5},
		{"edge 500k", 500_000, 7},
		{"edge 1M", 1_000_000, 10},
		{"edge 3M", 3_000_000, 16},
		{"just below 8M", 7_999_999.9, 16},
		{"edge 8M", 8_000_000, 23},
		{"metropolis", 9_000_000, 23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Weight(tt.population))
		})
	}
}

func TestSigmaKm(t *testing.T) {
	tests := []struct {
		weight   int
		expected int
	}{
		{1, 5},
		{2, 5},
		{3, 10},
		{5, 10},
		{7, 12},
		{9, 12},
		{10, 14},
		{16, 14},
		{17, 16},
		{23, 16},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, SigmaKm(tt.weight), "weight %d", tt.weight)
	}
}

func TestWeight_MonotonicAndBounded(t *testing.T) {
	allowed := Weights()
	assert.Equal(t, []int{1, 2, 3, 4, 5, 7, 10, 16, 23}, allowed)

	prev := Weight(-1)
	for p := 0.0; p <= 10_000_000; p += 997 {
		w := Weight(p)
		assert.GreaterOrEqual(t, w, prev, "population %v", p)
		assert.Contains(t, allowed, w)
		prev = w
	}
}

func TestSigmaKm_MonotonicAndBounded(t *testing.T) {
	allowed := SigmaValues()
	assert.Equal(t, []int{5, 10, 12, 14, 16}, allowed)

	prev := SigmaKm(0)
	for w := 0; w <= 30; w++ {
		s := SigmaKm(w)
		assert.GreaterOrEqual(t, s, prev, "weight %d", w)
		assert.Contains(t, allowed, s)
		prev = s
	}
}
