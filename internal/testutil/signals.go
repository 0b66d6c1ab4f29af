package testutil

import "math"

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// Sequence returns a function that yields values in order and starts over
// after the last one. It stands in for a random source when a test needs
// to predict every draw. An empty sequence yields zeros.
func Sequence(values ...float64) func() float64 {
	k := 0
	return func() float64 {
		if len(values) == 0 {
			return 0
		}
		v := values[k]
		k = (k + 1) % len(values)
		return v
	}
}
