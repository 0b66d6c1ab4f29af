// Package interp provides the interpolation kernels used by oscillators,
// wavetable readers and delay lines.
//
// Available kernels, from cheapest to highest quality:
//
//   - [Linear]:      2-point linear blend
//   - [Cosine]:      2-point blend through a half-cosine (C¹ at the joins)
//   - [QuadBSpline]: 3-point quadratic B-spline (smoothing, not interpolating)
//   - [QuadSpline]:  4-point quadratic spline on a staggered lattice
//   - [Hermite4]:    4-point cubic Hermite (Catmull-Rom)
//   - [Cubic]:       4-point cubic through all samples (exact for cubics)
//
// All kernels are pure functions of their arguments: the same inputs give
// bit-identical results. [LinearAt] and [CubicAt] read circular tables at a
// fractional position. [Sinc] and [NormalizedSinc] build windowed-sinc tables.
package interp
