package testutil

import "math/rand"

// Ramp returns [0, step, 2*step, ...] of length n.
func Ramp(step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = step * float64(i)
	}
	return out
}

// Constant returns a length-n state with every element set to value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// RandomState returns a deterministic pseudo-random state vector with
// elements in [-amplitude, amplitude].
func RandomState(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
