package interp

import "math"

// Linear blends y0 and y1: mu = 0 yields y0 and mu = 1 yields y1 exactly.
func Linear(y0, y1, mu float64) float64 {
	return (1-mu)*y0 + mu*y1
}

// Cosine blends y0 and y1 after shaping mu through a half-cosine, which
// gives a zero slope at both ends of the segment.
func Cosine(y0, y1, mu float64) float64 {
	mu2 := (1 - math.Cos(mu*math.Pi)) * 0.5

	return y0*(1-mu2) + y1*mu2
}

// Cubic interpolates between y1 and y2 with the cubic that passes through
// all four samples, taken at positions -1, 0, 1 and 2. Sampled polynomials
// up to degree three are reproduced exactly for any mu.
func Cubic(y0, y1, y2, y3, mu float64) float64 {
	mp1 := mu + 1
	mm1 := mu - 1
	mm2 := mu - 2

	c0 := -mu * mm1 * mm2 / 6
	c1 := mp1 * mm1 * mm2 / 2
	c2 := -mp1 * mu * mm2 / 2
	c3 := mp1 * mu * mm1 / 6

	return c0*y0 + c1*y1 + c2*y2 + c3*y3
}

// QuadSpline evaluates a quadratic spline over a lattice whose control
// points sit halfway between samples. odd selects which half of the
// staggered lattice mu falls into: the odd half blends y0..y2 over the
// upper half-segment, the even half blends y1..y3 over the lower one.
func QuadSpline(y0, y1, y2, y3, mu float64, odd bool) float64 {
	if odd {
		mu = 0.5 + mu*0.5
		f0 := mu*y1 + (1-mu)*y0
		f1 := mu*y2 + (1-mu)*y1

		return mu*f1 + (1-mu)*f0
	}

	mu *= 0.5
	f0 := mu*y2 + (1-mu)*y1
	f1 := mu*y3 + (1-mu)*y2

	return mu*f1 + (1-mu)*f0
}

// QuadBSpline evaluates the uniform quadratic B-spline segment defined by
// y0, y1 and y2. The curve starts at (y0+y1)/2, ends at (y1+y2)/2 and does
// not pass through the samples themselves.
func QuadBSpline(y0, y1, y2, mu float64) float64 {
	mu2 := mu * mu

	return 0.5 * (y2*mu2 + y1*(-2*mu2+2*mu+1) + y0*(mu2-2*mu+1))
}

// LagrangeInterpolator provides configurable fractional interpolation.
type LagrangeInterpolator struct {
	order int
}

// NewLagrangeInterpolator creates an interpolator.
// order: 1 = linear, 3 = cubic 4-point interpolation.
func NewLagrangeInterpolator(order int) *LagrangeInterpolator {
	return &LagrangeInterpolator{order: order}
}

// Interpolate interpolates around frac in [0,1].
// For order 1, samples must contain at least 2 values.
// For order 3, samples must contain at least 4 values and interpolates between samples[1] and samples[2].
func (l *LagrangeInterpolator) Interpolate(samples []float64, frac float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	if len(samples) < 2 {
		return samples[0]
	}
	if l.order == 3 && len(samples) >= 4 {
		return Cubic(samples[0], samples[1], samples[2], samples[3], frac)
	}
	return Linear(samples[0], samples[1], frac)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}
