// Package gain converts between the engine's gain representations.
//
// Gains are stored as the cube root of linear amplitude ("amp"), so that a
// linear control range maps perceptually:
//
//	linear = amp³      (AmpToLinear)
//	amp    = ∛linear   (LinearToAmp)
//
// Decibels use an 18·log2 curve rather than 20·log10. With that base a
// doubling of the stored amp value is exactly 18 dB, and the cubic storage
// maps linearly onto decibels. Both decibel conversions clamp their outputs
// ([-192, 96] dB and [0, 2] linear) so that -Inf and NaN never reach
// downstream audio math.
//
// Builds with the fastmath tag evaluate the logarithm and power through
// github.com/meko-christian/algo-approx instead of the math package.
package gain
