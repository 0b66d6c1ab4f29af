package core

import "math"

const (
	defaultEpsilon = 1e-12

	// DenormalThreshold is the magnitude below which FlushDenormals returns 0.
	DenormalThreshold = 1e-30
)

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// Clamp01 saturates x to [0, 1].
func Clamp01(x float64) float64 {
	if x > 1 {
		return 1
	}

	if x < 0 {
		return 0
	}

	return x
}

// ClampBipolar saturates x to [-1, 1].
func ClampBipolar(x float64) float64 {
	if x > 1 {
		return 1
	}

	if x < -1 {
		return -1
	}

	return x
}

// WithinRange reports whether lo <= value <= hi.
func WithinRange(lo, value, hi int) bool {
	return value >= lo && value <= hi
}

// Lerp blends a and b: x = 0 yields a, x = 1 yields b.
func Lerp(a, b, x float64) float64 {
	return (1-x)*a + x*b
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// FlushDenormals converts tiny denormal-like values to exact zero.
// This can reduce denormal-related CPU slowdowns in hot DSP loops.
func FlushDenormals(x float64) float64 {
	if x > -DenormalThreshold && x < DenormalThreshold {
		return 0
	}

	return x
}

// FlushDenormalsInPlace flushes the value behind p. It is meant for feedback
// state (filter memories, noise history) updated by reference.
func FlushDenormalsInPlace(p *float64) {
	if *p > -DenormalThreshold && *p < DenormalThreshold {
		*p = 0
	}
}

// FlushDenormalsBlock flushes every element of buf in place.
func FlushDenormalsBlock(buf []float64) {
	for i, v := range buf {
		if v > -DenormalThreshold && v < DenormalThreshold {
			buf[i] = 0
		}
	}
}
