// Package window provides the cosine-sum window functions used to build
// FIR kernels, sinc tables and analysis frames.
//
// Two layers are offered. The point functions ([BlackmanAt], [HannAt],
// [SymmetricBlackmanAt], ...) evaluate a single coefficient for an index
// and a length, so table builders can fold the window into their own loop
// without allocating. The slice layer ([Generate], [Apply], [SincKernel],
// [Analyze]) produces or applies whole windows at construction time.
//
// The symmetric point variants recenter the index by half the length
// before evaluating the cosine sum. Callers that iterate over offsets
// measured from the kernel centre (zero-phase and linear-phase FIR design)
// get the bell with its peak at offset 0.
package window
