//go:build !fastmath

package gain

import "math"

// mathLog2 computes log2(x) using standard library math.
func mathLog2(x float64) float64 {
	return math.Log2(x)
}

// mathPow2 computes 2^x using standard library math.
func mathPow2(x float64) float64 {
	return math.Exp2(x)
}

// mathCbrt computes the cube root using standard library math.
func mathCbrt(x float64) float64 {
	return math.Cbrt(x)
}
