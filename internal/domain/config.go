package domain

import "time"

// Config represents the commonmeta configuration loaded from commonmeta.yaml.
type Config struct {
	Upstream    UpstreamConfig
	Retry       RetryConfig
	Concurrency int
	Log         LogConfig
}

type UpstreamConfig struct {
	BaseURL      string
	Mailto       string
	Timeout      time.Duration
	MaxBodyBytes int64
}

// RetryConfig bounds retries of transient upstream failures.
type RetryConfig struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsed      time.Duration
}

type LogConfig struct {
	Path  string
	Debug bool
}

// DefaultConfig provides sane defaults if commonmeta.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Upstream: UpstreamConfig{
			BaseURL:      "https://api.crossref.org",
			Timeout:      30 * time.Second,
			MaxBodyBytes: 5 * 1024 * 1024,
		},
		Retry: RetryConfig{
			MaxAttempts:     4,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
			MaxElapsed:      30 * time.Second,
		},
		Concurrency: 4,
	}
}
