// Package signal renders deterministic test and reference signals from the
// engine primitives: quadrature sines, correlated and drift noise, and
// parameter ramps. A Generator with a fixed seed renders the same buffers
// on every run, which offline rendering and regression tests rely on.
package signal
