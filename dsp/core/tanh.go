package core

import "math"

// tanhFastCubic is the cubic term weight of the TanhFast denominator.
const tanhFastCubic = 2.0 / 3.0

// TanhFast approximates tanh(x) as sign(x)·(1 - 1/(1 + |x| + x² + ⅔|x|³)).
//
// The curve is odd, monotonic and saturates to ±1. The absolute error
// against math.Tanh stays below 0.05 over the whole real line.
func TanhFast(x float64) float64 {
	ax := math.Abs(x)
	xx := ax * ax
	denom := 1 + ax + xx + tanhFastCubic*ax*xx

	y := 1 - 1/denom
	if x > 0 {
		return y
	}

	return -y
}

// TanhFaster approximates tanh(x) with its fifth-order Taylor polynomial
// x·(1 - x²/3 + 2x⁴/15).
//
// It is accurate only for small |x| (error < 1e-3 for |x| <= 0.5) and is
// not bounded; callers clamp the input to the range they care about.
func TanhFaster(x float64) float64 {
	const (
		a = -1.0 / 3.0
		b = 2.0 / 15.0
	)

	xs := x * x

	return x * (1 + xs*a + xs*xs*b)
}
