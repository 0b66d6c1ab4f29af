// Package noise provides correlated noise generators for modulation and
// analog-style drift.
//
// Every generator draws uniform samples on [-1, 1] from a [Source] and runs
// them through one or two one-pole blends:
//
//	last = draw·(1-|ρ|) + ρ·last
//
// ρ near 1 gives slow, drifting noise; ρ = 0 is white; negative ρ tilts the
// spectrum towards high frequencies. [SecondOrder] cascades two stages for a
// steeper roll-off and [Drift] is a fixed, very slow first-order process.
//
// Randomness comes either from a [Shared] generator, typically one per
// engine so that a fixed seed reproduces a whole render, or from any
// caller-supplied function via [SourceFunc]. Generators are restartable
// with Reset and never allocate after construction.
package noise
