package resilience

import (
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAndRecovers(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 5 * time.Second, HalfOpenMaxReq: 1})

	now := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	failing := errors.New("connection refused")
	for i := 0; i < 2; i++ {
		if err := b.Execute(func() error { return failing }); !errors.Is(err, failing) {
			t.Fatalf("attempt %d: expected call error, got %v", i, err)
		}
	}
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}

	called := false
	if err := b.Execute(func() error { called = true; return nil }); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}
	if called {
		t.Fatalf("did not expect call while open")
	}

	now = now.Add(6 * time.Second)
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open after cool-down, got %s", state)
	}
	if err := b.Execute(func() error { return nil }); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Second, HalfOpenMaxReq: 1})
	now := time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	_ = b.Execute(func() error { return errors.New("boom") })
	now = now.Add(2 * time.Second)
	_ = b.Execute(func() error { return errors.New("still down") })

	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after failed probe, got %s", state)
	}
}

func TestCircuitBreaker_DisabledAlwaysCalls(t *testing.T) {
	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: false, FailureThreshold: 1})
	for i := 0; i < 3; i++ {
		_ = b.Execute(func() error { return errors.New("boom") })
	}
	if err := b.Execute(func() error { return nil }); err != nil {
		t.Fatalf("expected disabled breaker to pass through, got %v", err)
	}
}

func TestCircuitBreakerConfig_ForWorkers(t *testing.T) {
	base := DefaultCircuitBreakerConfig()

	if got := base.ForWorkers(1); got != base {
		t.Fatalf("single worker should keep defaults, got %+v", got)
	}

	scaled := base.ForWorkers(8)
	if scaled.FailureThreshold != base.FailureThreshold*8 {
		t.Fatalf("expected threshold %d, got %d", base.FailureThreshold*8, scaled.FailureThreshold)
	}
	if scaled.HalfOpenMaxReq != maxHalfOpenProbes {
		t.Fatalf("expected half-open probes capped at %d, got %d", maxHalfOpenProbes, scaled.HalfOpenMaxReq)
	}

	zero := CircuitBreakerConfig{Enabled: true}.ForWorkers(2)
	if zero.FailureThreshold != base.FailureThreshold*2 || zero.HalfOpenMaxReq != 2 {
		t.Fatalf("expected defaults filled before scaling, got %+v", zero)
	}
}

func TestCircuitBreakerConfig_Validate(t *testing.T) {
	if err := (CircuitBreakerConfig{Enabled: true, FailureThreshold: -1}).Validate(); err == nil {
		t.Fatalf("expected negative threshold to be rejected")
	}
	if err := (CircuitBreakerConfig{Enabled: true, OpenTimeout: -time.Second}).Validate(); err == nil {
		t.Fatalf("expected negative cooldown to be rejected")
	}
	if err := (CircuitBreakerConfig{Enabled: false, FailureThreshold: -1}).Validate(); err != nil {
		t.Fatalf("disabled breaker should skip validation, got %v", err)
	}
}
