// Package osc provides the quadrature oscillator used for sine/cosine pairs
// in frequency shifters, ring modulators and analysis code.
//
// [Quadrature] rotates a unit vector by a fixed complex factor once per
// sample instead of evaluating sin and cos. The recurrence drifts slowly in
// magnitude, so every [Quadrature.SetRate] renormalizes the vector.
package osc
