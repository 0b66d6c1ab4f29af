package signal

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/noise"
	"github.com/cwbudde/algo-synth/dsp/osc"
	"github.com/cwbudde/algo-synth/dsp/smooth"
	timestats "github.com/cwbudde/algo-synth/stats/time"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed changes the noise seed for subsequent renders.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

// Sine renders amplitude·sin(2π·freqHz·n/sampleRate) with a quadrature
// oscillator, starting at phase 0.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := g.check("sine", samples); err != nil {
		return nil, err
	}

	q := osc.NewQuadrature()
	q.SetFrequency(freqHz, g.cfg.SampleRate)

	out := make([]float64, samples)
	for i := range out {
		out[i] = amplitude * q.Sin()
		q.Advance()
	}
	return out, nil
}

// WhiteNoise renders deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	return g.CorrelatedNoise(0, amplitude, samples)
}

// CorrelatedNoise renders first-order correlated noise with correlation
// rho, scaled by amplitude.
func (g *Generator) CorrelatedNoise(rho, amplitude float64, samples int, opts ...noise.Option) ([]float64, error) {
	if err := g.checkNoise("correlated noise", amplitude, samples); err != nil {
		return nil, err
	}

	n := noise.NewCorrelated(noise.NewShared(g.seed), rho, opts...)
	out := make([]float64, samples)
	n.Fill(out)
	scale(out, amplitude)
	return out, nil
}

// SecondOrderNoise renders second-order correlated noise with correlation
// rho, scaled by amplitude.
func (g *Generator) SecondOrderNoise(rho, amplitude float64, samples int, opts ...noise.Option) ([]float64, error) {
	if err := g.checkNoise("second-order noise", amplitude, samples); err != nil {
		return nil, err
	}

	n := noise.NewSecondOrder(noise.NewShared(g.seed), rho, opts...)
	out := make([]float64, samples)
	n.Fill(out)
	scale(out, amplitude)
	return out, nil
}

// Drift renders drift noise scaled by amplitude.
func (g *Generator) Drift(amplitude float64, samples int) ([]float64, error) {
	if err := g.checkNoise("drift", amplitude, samples); err != nil {
		return nil, err
	}

	d := noise.NewDrift(noise.NewShared(g.seed))
	out := make([]float64, samples)
	d.Fill(out)
	scale(out, amplitude)
	return out, nil
}

// Ramp renders a linear parameter ramp from `from` that reaches `to` on the
// last sample, as a smoother with a block length of samples produces it.
func (g *Generator) Ramp(from, to float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("ramp samples must be > 0: %d", samples)
	}

	r := smooth.NewRamp(smooth.WithBlockLength(samples), smooth.WithSkipInitialRamp())
	r.SetTarget(from)
	r.SetTarget(to)

	out := make([]float64, samples)
	r.Fill(out)
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := timestats.Peak(data)

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	copy(out, data)
	scale(out, targetPeak/maxAbs)
	return out, nil
}

func (g *Generator) check(what string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", what, samples)
	}
	if g.cfg.SampleRate <= 0 {
		return fmt.Errorf("%s sample rate must be > 0: %f", what, g.cfg.SampleRate)
	}
	return nil
}

func (g *Generator) checkNoise(what string, amplitude float64, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", what, samples)
	}
	if amplitude < 0 {
		return fmt.Errorf("%s amplitude must be >= 0: %f", what, amplitude)
	}
	return nil
}

func scale(buf []float64, gain float64) {
	if gain == 1 {
		return
	}
	vecmath.ScaleBlock(buf, buf, gain)
}
