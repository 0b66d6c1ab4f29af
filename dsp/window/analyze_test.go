package window

import (
	"errors"
	"math"
	"testing"
)

func TestAnalyzeKnownWindows(t *testing.T) {
	tests := []struct {
		typ       Type
		enbw      float64
		bw3dB     float64
		firstMin  float64
		sidelobe  float64
		scallop   float64
		sideSlack float64
	}{
		{typ: TypeRectangular, enbw: 1.0, bw3dB: 0.89, firstMin: 1, sidelobe: -13.3, scallop: -3.92, sideSlack: 0.5},
		{typ: TypeHann, enbw: 1.5, bw3dB: 1.44, firstMin: 2, sidelobe: -31.5, scallop: -1.42, sideSlack: 0.5},
		{typ: TypeBlackman, enbw: 1.73, bw3dB: 1.64, firstMin: 3, sidelobe: -58.1, scallop: -1.10, sideSlack: 1.0},
	}

	for _, tt := range tests {
		t.Run(Info(tt.typ).Name, func(t *testing.T) {
			a, err := Analyze(Generate(tt.typ, 256, WithPeriodic()))
			if err != nil {
				t.Fatalf("Analyze: %v", err)
			}

			if !almostEqual(a.ENBW, tt.enbw, 0.02) {
				t.Fatalf("ENBW = %v, want ~%v", a.ENBW, tt.enbw)
			}
			if !almostEqual(a.Bandwidth3dB, tt.bw3dB, 0.05) {
				t.Fatalf("3dB bandwidth = %v, want ~%v", a.Bandwidth3dB, tt.bw3dB)
			}
			if !almostEqual(a.FirstMinimumBins, tt.firstMin, 0.1) {
				t.Fatalf("first minimum = %v, want ~%v", a.FirstMinimumBins, tt.firstMin)
			}
			if !almostEqual(a.HighestSidelobedB, tt.sidelobe, tt.sideSlack) {
				t.Fatalf("highest sidelobe = %v dB, want ~%v", a.HighestSidelobedB, tt.sidelobe)
			}
			if !almostEqual(a.ScallopLossdB, tt.scallop, 0.05) {
				t.Fatalf("scallop loss = %v dB, want ~%v", a.ScallopLossdB, tt.scallop)
			}
		})
	}
}

func TestAnalyzeCoherentGain(t *testing.T) {
	a, err := Analyze(Generate(TypeHamming, 512, WithPeriodic()))
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(a.CoherentGain, 0.54, 1e-9) {
		t.Fatalf("coherent gain = %v, want 0.54", a.CoherentGain)
	}
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := Analyze(nil); !errors.Is(err, ErrEmptyCoeffs) {
		t.Fatalf("Analyze(nil) err = %v", err)
	}
	if _, err := Analyze([]float64{1, -1}); !errors.Is(err, ErrZeroCoherentGain) {
		t.Fatalf("Analyze(zero-sum) err = %v", err)
	}
}

func TestSincKernel(t *testing.T) {
	h := make([]float64, 63)
	if err := SincKernel(h, 0.25, TypeBlackman); err != nil {
		t.Fatal(err)
	}

	sum := 0.0
	for i, v := range h {
		sum += v
		if math.Abs(v-h[len(h)-1-i]) > 1e-15 {
			t.Fatalf("kernel not linear-phase at %d", i)
		}
	}
	if !almostEqual(sum, 1, 1e-12) {
		t.Fatalf("DC gain = %v, want 1", sum)
	}

	// Nyquist response of a half-band lowpass is close to zero.
	nyq := 0.0
	for i, v := range h {
		if i%2 == 0 {
			nyq += v
		} else {
			nyq -= v
		}
	}
	if math.Abs(nyq) > 1e-3 {
		t.Fatalf("Nyquist gain = %v, want ~0", nyq)
	}

	if err := SincKernel(h, 0.7, TypeHann); !errors.Is(err, ErrInvalidCutoff) {
		t.Fatalf("SincKernel(cutoff 0.7) err = %v, want ErrInvalidCutoff", err)
	}
	if err := SincKernel(nil, 0.25, TypeHann); !errors.Is(err, ErrInvalidLength) {
		t.Fatalf("empty kernel err = %v", err)
	}
}
