package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	b := NewCircuitBreaker(2, 5*time.Second, 1)

	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open state, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected a second probe to be refused, got %v", err)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open probe, got %s", state)
	}
}

func TestCircuitBreaker_CallCountsOnlyTrippingErrors(t *testing.T) {
	errDown := errors.New("dependency down")
	errDenied := errors.New("denied")
	trips := func(err error) bool { return errors.Is(err, errDown) }

	b := NewCircuitBreaker(1, time.Minute, 1)

	if err := b.Call(func() error { return errDenied }, trips); !errors.Is(err, errDenied) {
		t.Fatalf("expected the call error back, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after a non-tripping error, got %s", state)
	}

	if err := b.Call(func() error { return errDown }, trips); !errors.Is(err, errDown) {
		t.Fatalf("expected the call error back, got %v", err)
	}

	called := false
	err := b.Call(func() error { called = true; return nil }, trips)
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if called {
		t.Fatalf("open breaker must not run the call")
	}
}

func TestCircuitBreakerConfig_Build(t *testing.T) {
	if b := (CircuitBreakerConfig{}).Build(); b != nil {
		t.Fatalf("expected nil breaker for a disabled config")
	}

	var disabled *CircuitBreaker
	if err := disabled.Call(func() error { return nil }, nil); err != nil {
		t.Fatalf("nil breaker should pass calls through: %v", err)
	}

	b := CircuitBreakerConfig{Enabled: true}.Build()
	if b == nil {
		t.Fatalf("expected a breaker")
	}
	if b.failureThreshold != 5 || b.openTimeout != 15*time.Second || b.halfOpenMaxReq != 2 {
		t.Fatalf("expected defaults, got threshold=%d timeout=%s halfOpen=%d", b.failureThreshold, b.openTimeout, b.halfOpenMaxReq)
	}
}
