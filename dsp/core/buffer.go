package core

// EnsureLen returns a slice of length n, reusing buf's backing array when
// its capacity allows. Callers keep the result for the next call so that
// scratch buffers stop allocating once they reach their largest size.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}
