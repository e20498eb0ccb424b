package probe

import (
	"time"

	"github.com/okian/wcfinals/pkg/logger"
)

// Defaults used when a Config field is left zero.
const (
	DefaultBaseURL     = "http://localhost:9080"
	DefaultTimeout     = 10 * time.Second
	DefaultConcurrency = 4
)

// Config holds configuration for a probe run.
type Config struct {
	BaseURL     string        // Base URL of the dashboard
	Timeout     time.Duration // HTTP request timeout
	Concurrency int           // Parallel requests per phase
	Logger      logger.Logger // Defaults to a no-op logger
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.Logger == nil {
		c.Logger = logger.Nop()
	}
	return c
}

// Report summarises a probe run.
type Report struct {
	Checks   int
	Failures []string
	Duration time.Duration
}

// OK reports whether every check passed.
func (r *Report) OK() bool { return len(r.Failures) == 0 }
