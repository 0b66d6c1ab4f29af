// Package pan provides stereo balance and panning gains.
package pan

import (
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// TriplePan moves a stereo pair towards one side without losing signal.
// x is clamped to [-1, 1]. For x < 0 the right channel is faded out by
// (1+x) and the removed part is folded into the left channel; x > 0 does
// the mirror image. x = 0 passes the pair unchanged, x = ±1 sums both
// channels into one side.
func TriplePan(left, right, x float64) (float64, float64) {
	x = core.ClampBipolar(x)

	if x < 0 {
		return left - x*right, (1 + x) * right
	}

	return (1 - x) * left, x*left + right
}

// TriplePanBlock applies TriplePan in place to the overlapping length of
// left and right.
func TriplePanBlock(left, right []float64, x float64) {
	n := len(left)
	if len(right) < n {
		n = len(right)
	}

	for i := 0; i < n; i++ {
		left[i], right[i] = TriplePan(left[i], right[i], x)
	}
}

// ConstantPower returns sine/cosine pan gains for a mono source. pan is
// clamped to [-1, 1]; -1 is hard left and the centre gives 1/√2 on both
// sides, so left² + right² = 1 everywhere.
func ConstantPower(pan float64) (left, right float64) {
	angle := (core.ClampBipolar(pan) + 1) * math.Pi / 4
	return math.Cos(angle), math.Sin(angle)
}

// MonoToStereo writes mono panned with ConstantPower into leftOut and
// rightOut, over the shortest of the three lengths.
func MonoToStereo(mono []float64, pan float64, leftOut, rightOut []float64) {
	gl, gr := ConstantPower(pan)

	n := len(mono)
	if len(leftOut) < n {
		n = len(leftOut)
	}
	if len(rightOut) < n {
		n = len(rightOut)
	}

	for i := 0; i < n; i++ {
		s := mono[i]
		leftOut[i] = s * gl
		rightOut[i] = s * gr
	}
}
