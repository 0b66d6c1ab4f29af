// Package time provides time-domain statistics of rendered signals: level
// (RMS, peak), zero crossings, moments and serial correlation. They back
// the level checks of the signal renderer and the statistical tests of the
// noise generators.
package time

import "math"

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	peak := math.Abs(signal[0])
	for _, x := range signal[1:] {
		peak = math.Max(peak, math.Abs(x))
	}

	return peak
}

// ZeroCrossings returns the number of zero crossings in the signal.
// A crossing is counted when consecutive samples have opposite signs.
func ZeroCrossings(signal []float64) int {
	var count int

	for i := 1; i < len(signal); i++ {
		if signal[i-1]*signal[i] < 0 {
			count++
		}
	}

	return count
}

// Moments returns the mean, population variance, skewness, and excess kurtosis
// of the signal using Welford's online algorithm for numerical stability.
func Moments(signal []float64) (mean, variance, skewness, kurtosis float64) {
	n := len(signal)
	if n == 0 {
		return 0, 0, 0, 0
	}

	var m2, m3, m4 float64

	for i, x := range signal {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 must be updated before M3, and M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN
	}

	nf := float64(n)

	variance = m2 / nf
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	return mean, variance, skewness, kurtosis
}

// Lag1Autocorrelation returns the autocorrelation of the signal at a lag of
// one sample, normalized by the variance. White noise gives about 0, a
// first-order process with coefficient ρ gives about ρ. Constant or
// shorter-than-two signals give 0.
func Lag1Autocorrelation(signal []float64) float64 {
	if len(signal) < 2 {
		return 0
	}

	mean, _, _, _ := Moments(signal)

	var num, den float64
	for i, x := range signal {
		d := x - mean
		den += d * d
		if i > 0 {
			num += d * (signal[i-1] - mean)
		}
	}

	if den == 0 {
		return 0
	}

	return num / den
}
