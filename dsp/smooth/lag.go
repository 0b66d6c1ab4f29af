package smooth

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/dsp/core"
)

const settleEps = 1e-12

// Lag is an exponential (one-pole) parameter smoother:
//
//	current = current·(1-k) + target·k
//
// With a constant target the distance to it shrinks by (1-k) per sample.
// k = 0 freezes the value, k = 1 tracks the target without delay.
type Lag struct {
	current float64
	target  float64
	k       float64
	kInv    float64

	skipInitialRamp bool
	firstRun        bool
}

// NewLag returns a Lag at zero with the configured coefficient
// (DefaultLagCoefficient unless WithCoefficient is given).
func NewLag(opts ...Option) Lag {
	cfg := applyOptions(opts)

	l := Lag{skipInitialRamp: cfg.skipInitialRamp}
	l.SetCoefficient(cfg.coefficient)
	l.Reset()

	return l
}

// Reset returns the lag to zero and re-arms the first-update jump. The
// coefficient is kept.
func (l *Lag) Reset() {
	l.current = 0
	l.target = 0
	l.firstRun = l.skipInitialRamp
}

// SetCoefficient sets k, clamped to [0, 1].
func (l *Lag) SetCoefficient(k float64) {
	l.k = core.Clamp01(k)
	l.kInv = 1 - l.k
}

// Coefficient returns k.
func (l *Lag) Coefficient() float64 { return l.k }

// SetTarget sets the value to converge to. The current value is left
// alone, except on the first call when the initial jump is enabled.
func (l *Lag) SetTarget(v float64) {
	l.target = v

	if l.firstRun {
		l.current = v
		l.firstRun = false
	}
}

// SetImmediate sets both the current value and the target to v.
func (l *Lag) SetImmediate(v float64) {
	l.target = v
	l.current = v
	l.firstRun = false
}

// SnapToTarget jumps to the target.
func (l *Lag) SnapToTarget() {
	l.current = l.target
}

// Advance applies one step of the one-pole blend.
func (l *Lag) Advance() {
	l.current = l.current*l.kInv + l.target*l.k
}

// Next advances one sample and returns the new value.
func (l *Lag) Next() float64 {
	l.Advance()
	return l.current
}

// Value returns the current value.
func (l *Lag) Value() float64 { return l.current }

// Target returns the value being converged to.
func (l *Lag) Target() float64 { return l.target }

// Fill writes len(dst) successive advanced values into dst.
func (l *Lag) Fill(dst []float64) {
	for i := range dst {
		l.current = l.current*l.kInv + l.target*l.k
		dst[i] = l.current
	}
}

// ApplyGain multiplies buf by successive advanced values. Once the value
// is within settleEps of the target it snaps there and the block is
// scaled in one pass.
func (l *Lag) ApplyGain(buf []float64) {
	if core.NearlyEqual(l.current, l.target, settleEps) {
		l.current = l.target
		vecmath.ScaleBlock(buf, buf, l.current)
		return
	}

	for i := range buf {
		l.current = l.current*l.kInv + l.target*l.k
		buf[i] *= l.current
	}
}

// CoefficientForTime returns the coefficient whose step response reaches
// 1-1/e of a change after seconds at sampleRate. Non-positive times give 1.
func CoefficientForTime(seconds, sampleRate float64) float64 {
	samples := seconds * sampleRate
	if !(samples > 0) {
		return 1
	}

	return 1 - math.Exp(-1/samples)
}
