package window

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCoeffs is returned when an operation needs at least one coefficient.
	ErrEmptyCoeffs = errors.New("window coefficients must not be empty")
	// ErrZeroCoherentGain is returned for windows whose coefficients sum to zero.
	ErrZeroCoherentGain = errors.New("window coherent gain is zero")
	// ErrInvalidLength is wrapped by every length validation error.
	ErrInvalidLength = errors.New("invalid window length")
	// ErrInvalidCutoff is wrapped when a sinc cutoff lies outside (0, 0.5].
	ErrInvalidCutoff = errors.New("invalid sinc cutoff")

	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d: %w", size, ErrInvalidLength)
	}
	return nil
}

func validateCutoff(cutoff float64) error {
	if !(cutoff > 0 && cutoff <= 0.5) {
		return fmt.Errorf("sinc cutoff must be in (0, 0.5]: %f: %w", cutoff, ErrInvalidCutoff)
	}
	return nil
}
