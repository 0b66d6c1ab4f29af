package window

// BlackmanAt returns coefficient i of an n-point Blackman window.
// Fractional indices are allowed.
func BlackmanAt(i float64, n int) float64 {
	if n <= 1 {
		return 1
	}

	return cosineFromCoeffs(i/float64(n-1), blackmanCoeffs)
}

// SymmetricBlackmanAt returns the Blackman window of period n evaluated at
// i - n/2. An offset i measured from the kernel centre yields 1 at i = 0
// and 0 at i = ±n/2.
func SymmetricBlackmanAt(i float64, n int) float64 {
	if n <= 0 {
		return 1
	}

	i -= float64(n) / 2

	return cosineFromCoeffs(i/float64(n), blackmanCoeffs)
}

// BlackmanHarrisAt returns coefficient i of an n-point 4-term
// Blackman-Harris window.
func BlackmanHarrisAt(i float64, n int) float64 {
	if n <= 1 {
		return 1
	}

	return cosineFromCoeffs(i/float64(n-1), blackmanHarris4Coeffs)
}

// SymmetricBlackmanHarrisAt is the centre-relative form of
// BlackmanHarrisAt, see SymmetricBlackmanAt.
func SymmetricBlackmanHarrisAt(i float64, n int) float64 {
	if n <= 0 {
		return 1
	}

	i -= float64(n) / 2

	return cosineFromCoeffs(i/float64(n), blackmanHarris4Coeffs)
}

// HannAt returns coefficient i of an n-point Hann window, and exactly 0
// for i >= n.
func HannAt(i, n int) float64 {
	if i >= n {
		return 0
	}

	if n == 1 {
		return 1
	}

	return cosineFromCoeffs(float64(i)/float64(n-1), hannCoeffs)
}

// HammingAt returns coefficient i of an n-point Hamming window, and
// exactly 0 for i >= n.
func HammingAt(i, n int) float64 {
	if i >= n {
		return 0
	}

	if n == 1 {
		return 1
	}

	return cosineFromCoeffs(float64(i)/float64(n-1), hammingCoeffs)
}
