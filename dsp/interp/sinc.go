package interp

import "math"

// sincGuard is the magnitude below which Sinc returns 1.
const sincGuard = 1e-22

// Sinc returns sin(x)/x, with Sinc(0) = 1.
func Sinc(x float64) float64 {
	if math.Abs(x) < sincGuard {
		return 1
	}

	return math.Sin(x) / x
}

// NormalizedSinc returns sin(πx)/(πx), with NormalizedSinc(0) = 1. It is
// zero at every other integer.
func NormalizedSinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}
