package flow

import "time"

type Config struct {
	// StepTimeout bounds each step's context. Zero means no per-step
	// deadline beyond the caller's.
	StepTimeout time.Duration
	// LogSkips logs at info level when a step ends the flow early
	LogSkips bool
}

type Option func(*Config)

// Replaces the entire config - if used, should always be the first option
func WithConfig(cfg Config) Option {
	return func(oldCfg *Config) {
		*oldCfg = cfg
	}
}

func WithStepTimeout(timeout time.Duration) Option {
	return func(cfg *Config) {
		cfg.StepTimeout = timeout
	}
}

func WithSkipLogging() Option {
	return func(cfg *Config) {
		cfg.LogSkips = true
	}
}
