package art

import "log/slog"

// Config holds the construction-time knobs for a Tree.
type Config struct {
	// Logger receives structured diagnostics: each successful Insert at
	// Debug and each recovered allocation failure at Warn. Node shape
	// transitions are not logged. Defaults to slog.Default().
	Logger *slog.Logger
}

// Option configures a Tree at construction time.
type Option func(*Config)

// WithLogger installs a structured logger for diagnostic output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

func defaultConfig() Config {
	return Config{
		Logger: slog.Default(),
	}
}

func newConfig(opts []Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return cfg
}
