package osc

import "math"

// Quadrature is a unit-circle rotator. After SetPhase(φ) and SetRate(ω),
// t calls to Advance leave
//
//	Real() = sin(φ + ωt)
//	Imag() = -cos(φ + ωt)
//
// The zero value is not usable; call NewQuadrature.
type Quadrature struct {
	r, i   float64
	dr, di float64
}

// NewQuadrature returns an oscillator at phase 0, that is (0, -1), with
// rate 0.
func NewQuadrature() Quadrature {
	return Quadrature{r: 0, i: -1, dr: 1, di: 0}
}

// SetRate sets the per-sample rotation in radians and renormalizes the
// state vector.
func (q *Quadrature) SetRate(w float64) {
	q.dr = math.Cos(w)
	q.di = math.Sin(w)
	q.Renormalize()
}

// SetFrequency sets the rotation from a frequency in Hz.
func (q *Quadrature) SetFrequency(hz, sampleRate float64) {
	if sampleRate <= 0 {
		return
	}

	q.SetRate(2 * math.Pi * hz / sampleRate)
}

// SetPhase places the state vector at phase w. The rate is unchanged.
func (q *Quadrature) SetPhase(w float64) {
	q.r = math.Sin(w)
	q.i = -math.Cos(w)
}

// Advance rotates the state vector by one sample.
func (q *Quadrature) Advance() {
	lr, li := q.r, q.i
	q.r = q.dr*lr - q.di*li
	q.i = q.dr*li + q.di*lr
}

// Real returns the real part of the state vector.
func (q *Quadrature) Real() float64 { return q.r }

// Imag returns the imaginary part of the state vector.
func (q *Quadrature) Imag() float64 { return q.i }

// Sin returns sin of the current phase.
func (q *Quadrature) Sin() float64 { return q.r }

// Cos returns cos of the current phase.
func (q *Quadrature) Cos() float64 { return -q.i }

// Magnitude returns the length of the state vector.
func (q *Quadrature) Magnitude() float64 {
	return math.Sqrt(q.r*q.r + q.i*q.i)
}

// Renormalize scales the state vector back onto the unit circle. A zero or
// non-finite vector is reset to phase 0.
func (q *Quadrature) Renormalize() {
	m := q.r*q.r + q.i*q.i
	if !(m > 0) || math.IsInf(m, 0) {
		q.r, q.i = 0, -1
		return
	}

	n := 1 / math.Sqrt(m)
	q.r *= n
	q.i *= n
}

// Fill advances once per sample and writes the resulting sine and cosine.
// Either slice may be nil; the overlapping length is processed when both
// are given.
func (q *Quadrature) Fill(sinOut, cosOut []float64) {
	n := len(sinOut)
	switch {
	case sinOut == nil:
		n = len(cosOut)
	case cosOut != nil && len(cosOut) < n:
		n = len(cosOut)
	}

	for k := 0; k < n; k++ {
		q.Advance()

		if sinOut != nil {
			sinOut[k] = q.r
		}

		if cosOut != nil {
			cosOut[k] = -q.i
		}
	}
}
