package smooth

import "github.com/cwbudde/algo-synth/dsp/core"

// DefaultLagCoefficient is the Lag coefficient used when none is given.
const DefaultLagCoefficient = 0.004

// Option configures a Ramp or a Lag. Options that do not apply to the
// smoother being built are ignored.
type Option func(*config)

type config struct {
	blockLength     int
	coefficient     float64
	skipInitialRamp bool
}

func defaultConfig() config {
	return config{
		blockLength: core.DefaultBlockSize,
		coefficient: DefaultLagCoefficient,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithBlockLength sets the Ramp duration in samples. Values <= 0 are ignored.
func WithBlockLength(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.blockLength = n
		}
	}
}

// WithProcessorConfig takes the Ramp duration from the processor block size.
func WithProcessorConfig(pc core.ProcessorConfig) Option {
	return WithBlockLength(pc.BlockSize)
}

// WithCoefficient sets the Lag coefficient, clamped to [0, 1].
func WithCoefficient(k float64) Option {
	return func(cfg *config) {
		cfg.coefficient = core.Clamp01(k)
	}
}

// WithSkipInitialRamp makes the first SetTarget after construction or Reset
// jump straight to the target instead of smoothing in from zero.
func WithSkipInitialRamp() Option {
	return func(cfg *config) {
		cfg.skipInitialRamp = true
	}
}
