package resilience

import "time"

const (
	defaultFailureThreshold = 5
	defaultOpenTimeout      = 15 * time.Second
	defaultHalfOpenMaxReq   = 2
)

// CircuitBreakerConfig mirrors the ANUBIS_CIRCUIT_* settings.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

// Build returns nil when disabled, which every breaker method treats as
// always closed. Unset fields fall back to 5 failures, 15s open and 2 probes.
func (cfg CircuitBreakerConfig) Build() *CircuitBreaker {
	if !cfg.Enabled {
		return nil
	}
	return NewCircuitBreaker(
		orDefault(cfg.FailureThreshold, defaultFailureThreshold),
		orDefault(cfg.OpenTimeout, defaultOpenTimeout),
		orDefault(cfg.HalfOpenMaxReq, defaultHalfOpenMaxReq),
	)
}

func orDefault[T int | time.Duration](v, def T) T {
	if v <= 0 {
		return def
	}
	return v
}
