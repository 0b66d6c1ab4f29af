package core

// ProcessorConfig defines the sample rate and control-rate block length
// shared by the voices of one engine instance.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultBlockSize is the control-rate block length used by voices and
// parameter smoothers when nothing else is configured.
const DefaultBlockSize = 32

// DefaultProcessorConfig returns the engine defaults: 48 kHz and a
// control-rate block of DefaultBlockSize samples.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 48000,
		BlockSize:  DefaultBlockSize,
	}
}

// BlockRate returns the number of control-rate blocks per second.
func (c ProcessorConfig) BlockRate() float64 {
	if c.BlockSize <= 0 {
		return c.SampleRate
	}

	return c.SampleRate / float64(c.BlockSize)
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the processing block size.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
