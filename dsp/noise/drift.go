package noise

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// DriftFilter is the per-sample blend of the drift process.
const DriftFilter = 1e-5

// Drift is very slow first-order noise used to detune oscillators. The
// output is scaled by 1/sqrt(DriftFilter) so that its level is usable as a
// modulation amount.
type Drift struct {
	draw func() float64
	gain float64
	last float64
}

// NewDrift returns drift noise drawing from src.
func NewDrift(src Source) Drift {
	return Drift{
		draw: drawFunc(src),
		gain: 1 / math.Sqrt(DriftFilter),
	}
}

// Reset zeroes the carried state.
func (d *Drift) Reset() { d.last = 0 }

// Last returns the carried state before scaling.
func (d *Drift) Last() float64 { return d.last }

// Next returns the next sample.
func (d *Drift) Next() float64 {
	d.last = core.FlushDenormals(d.last*(1-DriftFilter) + d.draw()*DriftFilter)
	return d.last * d.gain
}

// Fill writes len(dst) successive samples into dst.
func (d *Drift) Fill(dst []float64) {
	for i := range dst {
		dst[i] = d.Next()
	}
}
