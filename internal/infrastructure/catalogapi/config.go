package catalogapi

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidConfig indicates a missing or malformed client configuration
var ErrInvalidConfig = errors.New("catalogapi: invalid configuration")

// Config holds the settings for the remote catalog client
type Config struct {
	// BaseURL is the root of the remote catalog API, without a trailing slash
	BaseURL string

	// RequestTimeout bounds each HTTP call end to end
	RequestTimeout time.Duration
}

// Validate checks the configuration for required fields
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidConfig)
	}
	return nil
}
