package bounce

import "math"

// Rand is the uniform [0, 1) source the simulation draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// RandomInteger returns an integer drawn uniformly from [min, max).
// When the range is empty (max <= min) it returns min.
func RandomInteger(rng Rand, min, max int) int {
	if max <= min {
		return min
	}
	return int(math.Floor(rng.Float64()*float64(max-min))) + min
}

// randomSign returns +magnitude or -magnitude with equal probability.
func randomSign(rng Rand, magnitude float64) float64 {
	if rng.Float64() >= .5 {
		return magnitude
	}
	return -magnitude
}
