// Package smooth turns streams of discontinuous parameter targets into
// continuous per-sample values.
//
// Two smoothers are provided:
//
//   - [Ramp] moves linearly from the previous target to the new one over a
//     fixed block length, reaching it exactly after one block.
//   - [Lag] is a one-pole exponential follower that approaches its target
//     asymptotically.
//
// Both are small value types meant to be embedded in a voice or effect and
// mutated in place by the audio thread that owns it. No method allocates or
// blocks, and none is safe for concurrent use.
//
// A smoother starts at zero. Built with [WithSkipInitialRamp], its very
// first SetTarget jumps straight to the target so that a freshly triggered
// voice does not ramp in from zero.
package smooth
