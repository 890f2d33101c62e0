package testutil

import "math/rand"

// DeterministicUniform returns n values drawn uniformly from [lo, hi) with a
// fixed seed, so property tests see the same inputs on every run.
func DeterministicUniform(seed int64, lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = lo + rng.Float64()*(hi-lo)
	}
	return out
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
// n == 1 yields {lo}; n <= 0 yields an empty slice.
func Linspace(lo, hi float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}
