package placement

import "math/rand"

// randInt draws a uniform integer in [lo, hi], both ends included.
// A degenerate range collapses to lo instead of panicking; small border or
// overlap values produce such ranges routinely.
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// randFloat draws a uniform float in [lo, hi).
func randFloat(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
