package window

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// analysisOversample is the zero-padding factor of the analysis transform;
// the spectrum is sampled every 1/analysisOversample bins.
const analysisOversample = 32

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the 3 dB (half-power) main lobe width in bins.
	Bandwidth3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// FirstMinimumBins is the first null (minimum) position in bins.
	FirstMinimumBins float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients
// from a zero-padded FFT of the window.
func Analyze(coeffs []float64) (Analysis, error) {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}, ErrEmptyCoeffs
	}

	enbw, err := EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return Analysis{}, err
	}

	power, err := powerSpectrum(coeffs, nextPow2(n*analysisOversample))
	if err != nil {
		return Analysis{}, err
	}

	// Bin width of the padded transform, in bins of the n-point DFT.
	binsPerIndex := float64(n) / float64(2*(len(power)-1))

	dc := power[0]
	firstMin := firstMinimumIndex(power, dc)

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return Analysis{
		CoherentGain:      sum / float64(n),
		ENBW:              enbw,
		Bandwidth3dB:      2 * halfPowerIndex(power, dc) * binsPerIndex,
		HighestSidelobedB: highestSidelobe(power, dc, firstMin),
		FirstMinimumBins:  float64(firstMin) * binsPerIndex,
		ScallopLossdB:     core.LinearPowerToDB(dftMagSq(coeffs, 0.5/float64(n)) / dc),
	}, nil
}

// powerSpectrum returns |W[k]|² for k in [0, size/2] of the window padded
// to size samples.
func powerSpectrum(coeffs []float64, size int) ([]float64, error) {
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("window analysis plan (size %d): %w", size, err)
	}

	in := make([]complex128, size)
	for i, c := range coeffs {
		in[i] = complex(c, 0)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("window analysis transform: %w", err)
	}

	half := size/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)

	for k := range half {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}

	power := make([]float64, half)
	vecmath.Power(power, re, im)

	return power, nil
}

// halfPowerIndex returns the fractional index where the main lobe falls to
// half of the DC power, interpolating linearly between grid points.
func halfPowerIndex(power []float64, dc float64) float64 {
	target := 0.5 * dc
	for k := 1; k < len(power); k++ {
		if power[k] <= target {
			prev := power[k-1]
			frac := (prev - target) / (prev - power[k])

			return float64(k-1) + frac
		}
	}

	return float64(len(power) - 1)
}

// firstMinimumIndex returns the first local minimum after the main lobe has
// dropped below 10% of DC. The threshold skips the plateau of flat windows.
func firstMinimumIndex(power []float64, dc float64) int {
	threshold := 0.1 * dc
	for k := 1; k < len(power)-1; k++ {
		if power[k] < threshold && power[k+1] > power[k] {
			return k
		}
	}

	return len(power) - 1
}

func highestSidelobe(power []float64, dc float64, from int) float64 {
	peak := 0.0
	for k := from; k < len(power); k++ {
		peak = math.Max(peak, power[k])
	}

	if peak <= 0 || dc <= 0 {
		return math.Inf(-1)
	}

	return core.LinearPowerToDB(peak / dc)
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalised frequency [0,1).
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq
	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}
	return re*re + im*im
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
