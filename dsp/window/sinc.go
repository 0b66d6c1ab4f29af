package window

import "github.com/cwbudde/algo-synth/dsp/interp"

// SincKernel fills dst with a linear-phase windowed-sinc lowpass kernel.
// cutoff is the normalized cutoff frequency in (0, 0.5] (fraction of the
// sample rate). The kernel is scaled to unity gain at DC.
func SincKernel(dst []float64, cutoff float64, t Type) error {
	if err := validateLength(len(dst)); err != nil {
		return err
	}

	if err := validateCutoff(cutoff); err != nil {
		return err
	}

	GenerateInto(dst, t)

	center := float64(len(dst)-1) / 2
	sum := 0.0

	for i := range dst {
		x := float64(i) - center
		dst[i] *= 2 * cutoff * interp.NormalizedSinc(2*cutoff*x)
		sum += dst[i]
	}

	if sum == 0 {
		return ErrZeroCoherentGain
	}

	scale := 1 / sum
	for i := range dst {
		dst[i] *= scale
	}

	return nil
}
