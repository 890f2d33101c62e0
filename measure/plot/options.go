package plot

// Config holds the output geometry of Render.
type Config struct {
	Width, Height int

	// Supersample is the canvas enlargement factor; 1 disables smoothing.
	Supersample int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used when no options are given.
func DefaultConfig() Config {
	return Config{
		Width:       640,
		Height:      360,
		Supersample: 2,
	}
}

// WithSize sets the output image size in pixels. Non-positive values are
// ignored.
func WithSize(width, height int) Option {
	return func(cfg *Config) {
		if width > 0 && height > 0 {
			cfg.Width = width
			cfg.Height = height
		}
	}
}

// WithSupersample sets the supersample factor. Values < 1 are ignored.
func WithSupersample(factor int) Option {
	return func(cfg *Config) {
		if factor >= 1 {
			cfg.Supersample = factor
		}
	}
}

func applyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
