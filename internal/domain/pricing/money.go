package pricing

import "math"

// Round rounds to a whole currency unit, half away from zero.
func Round(v float64) float64 {
	return math.Round(v)
}

// Round2 rounds to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
