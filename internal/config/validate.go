package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if !strings.HasPrefix(c.Auth.SignInPath, "/") {
		return fmt.Errorf("auth.sign_in_path must be an absolute path (got %q)", c.Auth.SignInPath)
	}

	if err := c.Transform.validate(); err != nil {
		return fmt.Errorf("transform: %w", err)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must be an absolute path (got %q)", c.Metrics.Path)
	}

	return nil
}

func (t *TransformConfig) validate() error {
	if t.CreditFee <= 0 {
		return fmt.Errorf("credit_fee must be > 0 (got %d)", t.CreditFee)
	}
	if t.EditDebounce < 0 {
		return fmt.Errorf("edit_debounce must be >= 0 (got %s)", t.EditDebounce)
	}
	if t.SessionTTL <= 0 {
		return fmt.Errorf("session_ttl must be > 0 (got %s)", t.SessionTTL)
	}
	if t.JanitorInterval <= 0 {
		return fmt.Errorf("janitor_interval must be > 0 (got %s)", t.JanitorInterval)
	}
	return nil
}
