package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aalvaropc/commonmeta/internal/domain"
)

// apply copies the values set in y on top of cfg and validates them.
func apply(path string, cfg domain.Config, y yamlConfig) (domain.Config, error) {
	up := y.Upstream
	if up.BaseURL != nil {
		base := strings.TrimSpace(*up.BaseURL)
		if err := checkBaseURL(base); err != nil {
			return cfg, invalidField(path, "upstream.base_url", err.Error())
		}
		cfg.Upstream.BaseURL = base
	}
	if up.Mailto != nil {
		cfg.Upstream.Mailto = strings.TrimSpace(*up.Mailto)
	}
	if up.Timeout != nil {
		d, err := parseDuration(*up.Timeout)
		if err != nil {
			return cfg, invalidField(path, "upstream.timeout", err.Error())
		}
		cfg.Upstream.Timeout = d
	}
	if up.MaxBodyBytes != nil {
		if *up.MaxBodyBytes <= 0 {
			return cfg, invalidField(path, "upstream.max_body_bytes", "must be positive")
		}
		cfg.Upstream.MaxBodyBytes = *up.MaxBodyBytes
	}

	r := y.Retry
	if r.MaxAttempts != nil {
		if *r.MaxAttempts < 1 {
			return cfg, invalidField(path, "retry.max_attempts", "must be at least 1")
		}
		cfg.Retry.MaxAttempts = *r.MaxAttempts
	}
	durations := []struct {
		field string
		raw   *string
		dst   *time.Duration
	}{
		{"retry.initial_interval", r.InitialInterval, &cfg.Retry.InitialInterval},
		{"retry.max_interval", r.MaxInterval, &cfg.Retry.MaxInterval},
		{"retry.max_elapsed", r.MaxElapsed, &cfg.Retry.MaxElapsed},
	}
	for _, d := range durations {
		if d.raw == nil {
			continue
		}
		v, err := parseDuration(*d.raw)
		if err != nil {
			return cfg, invalidField(path, d.field, err.Error())
		}
		*d.dst = v
	}
	if cfg.Retry.MaxInterval < cfg.Retry.InitialInterval {
		return cfg, invalidField(path, "retry.max_interval", "must not be shorter than retry.initial_interval")
	}

	if y.Concurrency != nil {
		if *y.Concurrency < 1 {
			return cfg, invalidField(path, "concurrency", "must be at least 1")
		}
		cfg.Concurrency = *y.Concurrency
	}

	if y.Log.Path != nil {
		cfg.Log.Path = strings.TrimSpace(*y.Log.Path)
	}
	if y.Log.Debug != nil {
		cfg.Log.Debug = *y.Log.Debug
	}

	return cfg, nil
}

func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration %q is negative", s)
	}
	return d, nil
}

func checkBaseURL(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q is not an http(s) URL", s)
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:    "config.map",
		Kind:  domain.KindInvalidConfig,
		Field: field,
		Path:  path,
		Err:   fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
