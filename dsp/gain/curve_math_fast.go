//go:build fastmath

package gain

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// ln2 is the natural logarithm of 2, used for log base conversions.
const ln2 = 0.693147180559945309417232121458

// mathLog2 computes log2(x) using fast approximation.
func mathLog2(x float64) float64 {
	return approx.FastLog(x) / ln2
}

// mathPow2 computes 2^x using fast approximation.
func mathPow2(x float64) float64 {
	return approx.FastExp(x * ln2)
}

// mathCbrt computes the cube root using standard library math.
// Note: algo-approx has no cube root and LinearToAmp is a control-rate call.
func mathCbrt(x float64) float64 {
	return math.Cbrt(x)
}
