package noise

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// minNormSpan bounds 1-|ρ| in the normalization gain, limiting it to 100.
const minNormSpan = 1e-4

// Correlated is first-order correlated noise.
type Correlated struct {
	draw      func() float64
	rho       float64
	span      float64
	gain      float64
	normalize bool
	last      float64
}

// NewCorrelated returns first-order noise drawing from src with
// correlation rho, clamped to [-1, 1]. A nil src gets a private Shared
// source seeded with 1.
func NewCorrelated(src Source, rho float64, opts ...Option) Correlated {
	cfg := applyOptions(opts)

	c := Correlated{
		draw:      drawFunc(src),
		normalize: cfg.normalize,
	}
	c.SetCorrelation(rho)

	return c
}

// SetCorrelation sets ρ, clamped to [-1, 1]. The carried state is kept.
func (c *Correlated) SetCorrelation(rho float64) {
	c.rho = core.ClampBipolar(rho)
	c.span = 1 - math.Abs(c.rho)
	c.gain = normalizationGain(c.span, c.normalize)
}

// Correlation returns ρ.
func (c *Correlated) Correlation() float64 { return c.rho }

// Reset zeroes the carried state.
func (c *Correlated) Reset() { c.last = 0 }

// Last returns the carried state before output scaling.
func (c *Correlated) Last() float64 { return c.last }

// Next returns the next sample.
func (c *Correlated) Next() float64 {
	c.last = core.FlushDenormals(c.draw()*c.span + c.rho*c.last)
	return c.last * c.gain
}

// Fill writes len(dst) successive samples into dst.
func (c *Correlated) Fill(dst []float64) {
	for i := range dst {
		dst[i] = c.Next()
	}
}

func normalizationGain(span float64, normalize bool) float64 {
	if !normalize {
		return 1
	}

	return 1 / math.Sqrt(math.Max(span, minNormSpan))
}
