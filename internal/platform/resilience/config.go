package resilience

import (
	"fmt"
	"time"
)

const maxHalfOpenProbes = 4

// CircuitBreakerConfig tunes the breaker in front of cricket API calls.
type CircuitBreakerConfig struct {
	Enabled bool
	// FailureThreshold is the number of consecutive transient failures that opens the breaker.
	FailureThreshold int
	// OpenTimeout is how long an open breaker rejects calls before admitting probes.
	OpenTimeout    time.Duration
	HalfOpenMaxReq int
}

// DefaultCircuitBreakerConfig fits a single cricket-cli caller.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 3,
		OpenTimeout:      5 * time.Second,
		HalfOpenMaxReq:   1,
	}
}

// ForWorkers scales the config for n concurrent callers: a burst of n simultaneous
// failures counts as one round, and up to n probes (capped) may run half-open.
func (c CircuitBreakerConfig) ForWorkers(n int) CircuitBreakerConfig {
	if n <= 1 {
		return c
	}
	c = c.withDefaults()
	c.FailureThreshold *= n
	c.HalfOpenMaxReq = min(n, maxHalfOpenProbes)
	return c
}

func (c CircuitBreakerConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.FailureThreshold < 0 {
		return fmt.Errorf("breaker failure threshold must be >= 0, got %d", c.FailureThreshold)
	}
	if c.OpenTimeout < 0 {
		return fmt.Errorf("breaker cooldown must be >= 0, got %s", c.OpenTimeout)
	}
	return nil
}

// withDefaults fills zero values from DefaultCircuitBreakerConfig.
func (c CircuitBreakerConfig) withDefaults() CircuitBreakerConfig {
	defaults := DefaultCircuitBreakerConfig()
	if c.FailureThreshold < 1 {
		c.FailureThreshold = defaults.FailureThreshold
	}
	if c.OpenTimeout <= 0 {
		c.OpenTimeout = defaults.OpenTimeout
	}
	if c.HalfOpenMaxReq < 1 {
		c.HalfOpenMaxReq = defaults.HalfOpenMaxReq
	}
	return c
}
