package noise

import (
	"math"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-synth/internal/testutil"
	timestats "github.com/cwbudde/algo-synth/stats/time"
)

const statLength = 200000

func TestSharedDeterministic(t *testing.T) {
	a := NewShared(42)
	b := NewShared(42)
	for i := 0; i < 1000; i++ {
		va, vb := a.Bipolar(), b.Bipolar()
		if va != vb {
			t.Fatalf("sample %d: %v != %v for equal seeds", i, va, vb)
		}
		if va < -1 || va >= 1 {
			t.Fatalf("sample %d: Bipolar() = %v out of [-1, 1)", i, va)
		}
	}

	first := NewShared(7).Bipolar()
	a.Seed(7)
	if got := a.Bipolar(); got != first {
		t.Fatalf("after Seed(7): %v, want %v", got, first)
	}

	a.Restart()
	if got := a.Bipolar(); got != first {
		t.Fatalf("after Restart: %v, want %v", got, first)
	}

	if u := a.Unipolar(); u < 0 || u >= 1 {
		t.Fatalf("Unipolar() = %v out of [0, 1)", u)
	}
}

func TestCorrelatedWhiteAtZero(t *testing.T) {
	c := NewCorrelated(NewShared(1), 0)
	x := make([]float64, statLength)
	c.Fill(x)

	if r := timestats.Lag1Autocorrelation(x); math.Abs(r) > 0.02 {
		t.Fatalf("lag-1 autocorrelation = %v, want ~0", r)
	}
}

func TestCorrelatedZeroCrossingRate(t *testing.T) {
	rate := func(rho float64) float64 {
		c := NewCorrelated(NewShared(8), rho)
		x := make([]float64, statLength)
		c.Fill(x)
		return float64(timestats.ZeroCrossings(x)) / float64(len(x)-1)
	}

	white, low, high := rate(0), rate(0.9), rate(-0.9)
	if math.Abs(white-0.5) > 0.02 {
		t.Fatalf("white zero-crossing rate = %v, want ~0.5", white)
	}
	if !(low < white && white < high) {
		t.Fatalf("zero-crossing rates low=%v white=%v high=%v, want increasing", low, white, high)
	}
}

func TestCorrelatedAutocorrelationFollowsRho(t *testing.T) {
	for _, rho := range []float64{0.5, 0.9, -0.5, -0.9} {
		c := NewCorrelated(NewShared(3), rho)
		x := make([]float64, statLength)
		c.Fill(x)

		if r := timestats.Lag1Autocorrelation(x); math.Abs(r-rho) > 0.02 {
			t.Fatalf("rho=%v: lag-1 autocorrelation = %v", rho, r)
		}
	}
}

func TestCorrelatedFreezesAtOne(t *testing.T) {
	c := NewCorrelated(NewShared(5), 0.5)
	for i := 0; i < 100; i++ {
		c.Next()
	}

	held := c.Last()
	c.SetCorrelation(1)
	for i := 0; i < 1000; i++ {
		if got := c.Next(); got != held {
			t.Fatalf("step %d: Next() = %v, want frozen %v", i, got, held)
		}
	}

	c.SetCorrelation(4)
	if c.Correlation() != 1 {
		t.Fatalf("Correlation() = %v, want clamp to 1", c.Correlation())
	}
}

func TestCorrelatedNormalization(t *testing.T) {
	const rho = 0.9

	plain := NewCorrelated(NewShared(9), rho)
	norm := NewCorrelated(NewShared(9), rho, WithNormalization())

	a := make([]float64, statLength)
	b := make([]float64, statLength)
	plain.Fill(a)
	norm.Fill(b)

	want := 1 / math.Sqrt(1-rho)
	for i := range a {
		if math.Abs(b[i]-a[i]*want) > 1e-12 {
			t.Fatalf("sample %d: normalized %v, want %v", i, b[i], a[i]*want)
		}
	}

	// Uniform draws have variance 1/3; the normalized process has 1/(3(1+ρ)).
	_, v, _, _ := timestats.Moments(b)
	if got := v * 3 * (1 + rho); math.Abs(got-1) > 0.1 {
		t.Fatalf("normalized variance ratio = %v, want ~1", got)
	}

	frozen := NewCorrelated(NewShared(9), 1, WithNormalization())
	x := make([]float64, 64)
	frozen.Fill(x)
	testutil.RequireFinite(t, x)
}

func TestCorrelatedResetAndDeterminism(t *testing.T) {
	src := NewShared(11)
	c := NewCorrelated(src, 0.7)
	first := make([]float64, 32)
	c.Fill(first)

	src.Restart()
	c.Reset()
	if c.Last() != 0 {
		t.Fatalf("Reset: Last() = %v, want 0", c.Last())
	}

	again := make([]float64, 32)
	c.Fill(again)
	testutil.RequireSliceNearlyEqual(t, again, first, 0)
}

func TestCorrelatedFlushesDenormals(t *testing.T) {
	c := NewCorrelated(SourceFunc(testutil.Sequence(0)), 0.5)
	c.last = 1e-300

	if got := c.Next(); got != 0 {
		t.Fatalf("Next() = %v, want flushed 0", got)
	}
}

func TestNilSourceFallsBack(t *testing.T) {
	c := NewCorrelated(nil, 0)
	s := NewSecondOrderFunc(nil, 0)

	x := make([]float64, 16)
	c.Fill(x)
	testutil.RequireFinite(t, x)
	s.Fill(x)
	testutil.RequireFinite(t, x)
}

func TestTypedNilSharedFallsBack(t *testing.T) {
	var shared *Shared

	c := NewCorrelated(shared, 0.5)
	s := NewSecondOrder(shared, 0.5)
	d := NewDrift(shared)

	for i := 0; i < 16; i++ {
		for _, v := range []float64{c.Next(), s.Next(), d.Next()} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("step %d: got %v, want finite", i, v)
			}
		}
	}
}

func TestSecondOrderEntryPointsAgree(t *testing.T) {
	shared := NewShared(21)
	rng := NewShared(21)

	a := NewSecondOrder(shared, 0.8, WithNormalization())
	b := NewSecondOrderFunc(rng.Bipolar, 0.8, WithNormalization())

	for i := 0; i < 4096; i++ {
		va, vb := a.Next(), b.Next()
		if va != vb {
			t.Fatalf("sample %d: storage-bound %v != supplied %v", i, va, vb)
		}
	}
}

func TestSecondOrderRecurrence(t *testing.T) {
	draws := []float64{1, -0.5, 0.25, 0}
	s := NewSecondOrderFunc(testutil.Sequence(draws...), 0.5)

	const w = 0.45
	last, last2 := 0.0, 0.0
	for i := 0; i < 8; i++ {
		last2 = draws[i%len(draws)]*(1-w) + w*last2
		last = last2*(1-w) + w*last

		if got := s.Next(); math.Abs(got-last) > 1e-15 {
			t.Fatalf("step %d: Next() = %v, want %v", i, got, last)
		}
	}
}

func TestSecondOrderIsSmoother(t *testing.T) {
	first := NewCorrelated(NewShared(2), 0.9)
	second := NewSecondOrder(NewShared(2), 1)

	a := make([]float64, statLength)
	b := make([]float64, statLength)
	first.Fill(a)
	second.Fill(b)

	ra, rb := timestats.Lag1Autocorrelation(a), timestats.Lag1Autocorrelation(b)
	if rb < 0.98 || rb <= ra {
		t.Fatalf("second-order lag-1 autocorrelation = %v, first-order %v", rb, ra)
	}

	s := NewSecondOrder(NewShared(2), 0.6)
	s.Next()
	s.Reset()
	if s.Last() != 0 || s.last2 != 0 {
		t.Fatalf("Reset left state (%v, %v)", s.Last(), s.last2)
	}
}

// bandEnergy returns the average power in the lowest and highest quarter
// of the spectrum of x, split into frames of size frame.
func bandEnergy(t *testing.T, x []float64, frame int) (low, high float64) {
	t.Helper()

	plan, err := algofft.NewPlan64(frame)
	if err != nil {
		t.Fatalf("NewPlan64(%d): %v", frame, err)
	}

	in := make([]complex128, frame)
	out := make([]complex128, frame)
	quarter := frame / 8

	for start := 0; start+frame <= len(x); start += frame {
		for i := range in {
			in[i] = complex(x[start+i], 0)
		}

		if err := plan.Forward(out, in); err != nil {
			t.Fatalf("Forward: %v", err)
		}

		for k := 1; k <= quarter; k++ {
			low += real(out[k])*real(out[k]) + imag(out[k])*imag(out[k])
			h := frame/2 - k + 1
			high += real(out[h])*real(out[h]) + imag(out[h])*imag(out[h])
		}
	}

	return low, high
}

func TestCorrelatedSpectralTilt(t *testing.T) {
	const frame = 1024

	tests := []struct {
		name     string
		rho      float64
		minRatio float64
		maxRatio float64
	}{
		{name: "white", rho: 0, minRatio: 0.8, maxRatio: 1.25},
		{name: "lowpass", rho: 0.9, minRatio: 20, maxRatio: math.Inf(1)},
		{name: "highpass", rho: -0.9, minRatio: 0, maxRatio: 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCorrelated(NewShared(13), tt.rho)
			x := make([]float64, 64*frame)
			c.Fill(x)

			low, high := bandEnergy(t, x, frame)
			if ratio := low / high; ratio < tt.minRatio || ratio > tt.maxRatio {
				t.Fatalf("low/high energy ratio = %v, want in [%v, %v]", ratio, tt.minRatio, tt.maxRatio)
			}
		})
	}
}

func TestDriftIsSlowAndBounded(t *testing.T) {
	d := NewDrift(NewShared(17))
	maxStep := 2 * math.Sqrt(DriftFilter)

	prev := d.Next()
	for i := 0; i < statLength; i++ {
		v := d.Next()
		if math.Abs(v-prev) > maxStep+1e-12 {
			t.Fatalf("step %d: change %v exceeds %v", i, math.Abs(v-prev), maxStep)
		}
		if math.Abs(d.Last()) > 1 {
			t.Fatalf("step %d: state %v left [-1, 1]", i, d.Last())
		}
		prev = v
	}

	d.Reset()
	if d.Last() != 0 {
		t.Fatalf("Reset: Last() = %v, want 0", d.Last())
	}
}

func TestFillMatchesNext(t *testing.T) {
	a := NewDrift(NewShared(4))
	b := NewDrift(NewShared(4))

	x := make([]float64, 128)
	a.Fill(x)
	for i, v := range x {
		if want := b.Next(); v != want {
			t.Fatalf("Fill[%d] = %v, want %v", i, v, want)
		}
	}
}

func BenchmarkCorrelatedNext(b *testing.B) {
	b.ReportAllocs()
	c := NewCorrelated(NewShared(1), 0.5)
	for i := 0; i < b.N; i++ {
		c.Next()
	}
}

func BenchmarkSecondOrderFill(b *testing.B) {
	b.ReportAllocs()
	s := NewSecondOrder(NewShared(1), 0.5, WithNormalization())
	buf := make([]float64, 256)
	for i := 0; i < b.N; i++ {
		s.Fill(buf)
	}
}
