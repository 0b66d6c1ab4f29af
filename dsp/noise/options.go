package noise

// Option configures a correlated noise generator.
type Option func(*config)

type config struct {
	normalize bool
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithNormalization scales the output by 1/sqrt(1-|ρ|) so that its level
// stays roughly constant as the correlation grows.
func WithNormalization() Option {
	return func(cfg *config) {
		cfg.normalize = true
	}
}
