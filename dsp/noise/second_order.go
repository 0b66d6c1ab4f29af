package noise

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// secondOrderScale maps the correlation onto the per-stage coefficient so
// that the cascade never freezes.
const secondOrderScale = 0.9

// SecondOrder is correlated noise from two cascaded one-pole stages.
type SecondOrder struct {
	draw      func() float64
	rho       float64
	w         float64
	span      float64
	gain      float64
	normalize bool
	last      float64
	last2     float64
}

// NewSecondOrder returns second-order noise drawing from src, usually the
// engine's *Shared source.
func NewSecondOrder(src Source, rho float64, opts ...Option) SecondOrder {
	return newSecondOrder(drawFunc(src), rho, opts)
}

// NewSecondOrderFunc returns second-order noise drawing from f, which must
// return uniform samples on [-1, 1]. A nil f behaves like a nil Source.
func NewSecondOrderFunc(f func() float64, rho float64, opts ...Option) SecondOrder {
	if f == nil {
		return newSecondOrder(drawFunc(nil), rho, opts)
	}

	return newSecondOrder(f, rho, opts)
}

func newSecondOrder(draw func() float64, rho float64, opts []Option) SecondOrder {
	cfg := applyOptions(opts)

	s := SecondOrder{
		draw:      draw,
		normalize: cfg.normalize,
	}
	s.SetCorrelation(rho)

	return s
}

// SetCorrelation sets ρ, clamped to [-1, 1]. Each stage uses 0.9·ρ.
func (s *SecondOrder) SetCorrelation(rho float64) {
	s.rho = core.ClampBipolar(rho)
	s.w = secondOrderScale * s.rho
	s.span = 1 - math.Abs(s.w)
	s.gain = normalizationGain(s.span, s.normalize)
}

// Correlation returns ρ.
func (s *SecondOrder) Correlation() float64 { return s.rho }

// Reset zeroes both carried states.
func (s *SecondOrder) Reset() {
	s.last = 0
	s.last2 = 0
}

// Last returns the output stage state before scaling.
func (s *SecondOrder) Last() float64 { return s.last }

// Next returns the next sample.
func (s *SecondOrder) Next() float64 {
	s.last2 = core.FlushDenormals(s.draw()*s.span + s.w*s.last2)
	s.last = core.FlushDenormals(s.last2*s.span + s.w*s.last)

	return s.last * s.gain
}

// Fill writes len(dst) successive samples into dst.
func (s *SecondOrder) Fill(dst []float64) {
	for i := range dst {
		dst[i] = s.Next()
	}
}
