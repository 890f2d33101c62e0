package accuracy

// Config defines sweep and distortion-analysis settings.
type Config struct {
	// Samples is the number of evenly spaced points a sweep evaluates.
	Samples int

	// RelativeFloor bounds the denominator of relative errors from below so
	// reference values near zero do not inflate them.
	RelativeFloor float64

	// Harmonics is the highest harmonic SineTHD sums, starting at 2.
	Harmonics int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{
		Samples:       1001,
		RelativeFloor: 1e-3,
		Harmonics:     9,
	}
}

// WithSamples sets the number of sweep points. Values <= 0 are ignored.
func WithSamples(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Samples = n
		}
	}
}

// WithRelativeFloor sets the relative-error floor. Values <= 0 are ignored.
func WithRelativeFloor(floor float64) Option {
	return func(cfg *Config) {
		if floor > 0 {
			cfg.RelativeFloor = floor
		}
	}
}

// WithHarmonics sets the highest harmonic included in THD. Values < 2 are
// ignored.
func WithHarmonics(h int) Option {
	return func(cfg *Config) {
		if h >= 2 {
			cfg.Harmonics = h
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
