package smooth

import "github.com/cwbudde/algo-vecmath"

// Ramp is a linear-ramp parameter smoother.
//
// SetTarget starts a ramp from the previous target to the new one; after
// BlockLength calls to Advance the value equals the target. Advancing
// further keeps adding the same increment, so callers advance exactly one
// block per target.
type Ramp struct {
	current   float64
	target    float64
	increment float64
	blockLen  int
	blockInv  float64

	skipInitialRamp bool
	firstRun        bool
}

// NewRamp returns a Ramp at zero with the configured block length.
func NewRamp(opts ...Option) Ramp {
	cfg := applyOptions(opts)

	r := Ramp{skipInitialRamp: cfg.skipInitialRamp}
	r.SetBlockLength(cfg.blockLength)
	r.Reset()

	return r
}

// Reset returns the ramp to zero and re-arms the first-update jump. The
// block length is kept.
func (r *Ramp) Reset() {
	r.current = 0
	r.target = 0
	r.increment = 0
	r.firstRun = r.skipInitialRamp

	if r.blockLen <= 0 {
		r.SetBlockLength(defaultConfig().blockLength)
	}
}

// SetBlockLength sets the ramp duration in samples. Values <= 0 are ignored.
// A ramp in progress keeps its increment until the next SetTarget.
func (r *Ramp) SetBlockLength(n int) {
	if n <= 0 {
		return
	}

	r.blockLen = n
	r.blockInv = 1 / float64(n)
}

// BlockLength returns the ramp duration in samples.
func (r *Ramp) BlockLength() int { return r.blockLen }

// SetTarget starts a ramp towards v.
func (r *Ramp) SetTarget(v float64) {
	r.current = r.target
	r.target = v

	if r.firstRun {
		r.current = v
		r.firstRun = false
	}

	r.increment = (r.target - r.current) * r.blockInv
}

// SnapToTarget jumps to the target and stops the ramp.
func (r *Ramp) SnapToTarget() {
	r.current = r.target
	r.increment = 0
}

// Advance moves the value one sample along the ramp.
func (r *Ramp) Advance() {
	r.current += r.increment
}

// Next advances one sample and returns the new value.
func (r *Ramp) Next() float64 {
	r.current += r.increment
	return r.current
}

// Value returns the current value.
func (r *Ramp) Value() float64 { return r.current }

// Target returns the value the ramp is heading to.
func (r *Ramp) Target() float64 { return r.target }

// Increment returns the per-sample step of the current ramp.
func (r *Ramp) Increment() float64 { return r.increment }

// Fill writes len(dst) successive advanced values into dst.
func (r *Ramp) Fill(dst []float64) {
	for i := range dst {
		r.current += r.increment
		dst[i] = r.current
	}
}

// ApplyGain multiplies buf by successive advanced values, treating the
// ramp as a per-sample gain.
func (r *Ramp) ApplyGain(buf []float64) {
	if r.increment == 0 {
		vecmath.ScaleBlock(buf, buf, r.current)
		return
	}

	for i := range buf {
		r.current += r.increment
		buf[i] *= r.current
	}
}
