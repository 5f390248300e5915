package utils

import "math/rand"

// Binomial draws a sample from Binomial(n, p) using the given source.
// Passing the same *rand.Rand state always yields the same sequence,
// which is what lets the enrichment heuristic be replayed in tests.
func Binomial(r *rand.Rand, n int, p float64) int {
	if n <= 0 || p <= 0 {
		return 0
	}
	if p >= 1 {
		return n
	}

	k := 0
	for i := 0; i < n; i++ {
		if r.Float64() < p {
			k++
		}
	}
	return k
}

// Clamp limits v to the [lo, hi] range.
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
