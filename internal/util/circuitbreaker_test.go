package util

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestBreaker(threshold int, clock *time.Time) *CircuitBreaker {
	cb := NewCircuitBreaker("test", threshold, time.Minute, zap.NewNop())
	cb.now = func() time.Time { return *clock }
	return cb
}

func TestCircuitBreakerOpensAtThreshold(t *testing.T) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := newTestBreaker(3, &clock)

	cb.RecordFailure(0)
	cb.RecordFailure(0)
	if !cb.Allow() {
		t.Fatalf("breaker should stay closed below the threshold")
	}

	cb.RecordFailure(0)
	if cb.Allow() {
		t.Fatalf("breaker should open at the threshold")
	}
	if got := cb.State(); got != CircuitStateOpen {
		t.Fatalf("State() = %s, want OPEN", got)
	}
}

func TestCircuitBreakerHalfOpenRecovery(t *testing.T) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := newTestBreaker(1, &clock)

	cb.RecordFailure(0)
	clock = clock.Add(time.Minute)

	if got := cb.State(); got != CircuitStateHalfOpen {
		t.Fatalf("State() = %s, want HALF_OPEN after timeout", got)
	}

	cb.RecordFailure(0)
	if got := cb.State(); got != CircuitStateOpen {
		t.Fatalf("failed probe should reopen, got %s", got)
	}

	clock = clock.Add(time.Minute)
	cb.State()
	cb.RecordSuccess()
	if got := cb.State(); got != CircuitStateClosed {
		t.Fatalf("successful probe should close, got %s", got)
	}
}

func TestCircuitBreakerCustomTimeout(t *testing.T) {
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := newTestBreaker(1, &clock)

	cb.RecordFailure(10 * time.Minute)
	clock = clock.Add(5 * time.Minute)
	if cb.Allow() {
		t.Fatalf("custom timeout should keep the breaker open")
	}

	cb.Reset()
	if !cb.Allow() {
		t.Fatalf("Reset should close the breaker")
	}
}
