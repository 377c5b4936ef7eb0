package util

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// CircuitState represents the state of the circuit breaker
type CircuitState string

const (
	CircuitStateClosed   CircuitState = "CLOSED"    // 정상 작동
	CircuitStateOpen     CircuitState = "OPEN"      // 호출 차단
	CircuitStateHalfOpen CircuitState = "HALF_OPEN" // 복구 시도 중
)

func (s CircuitState) String() string {
	return string(s)
}

// CircuitBreaker guards a single upstream provider. After threshold
// consecutive failures it opens for the reset timeout, then lets one probe
// call through in HALF_OPEN.
type CircuitBreaker struct {
	name         string
	threshold    int
	resetTimeout time.Duration
	now          func() time.Time
	logger       *zap.Logger

	mu        sync.Mutex
	state     CircuitState
	failures  int
	openUntil time.Time
}

func NewCircuitBreaker(name string, threshold int, resetTimeout time.Duration, logger *zap.Logger) *CircuitBreaker {
	if threshold <= 0 {
		threshold = 1
	}
	return &CircuitBreaker{
		name:         name,
		threshold:    threshold,
		resetTimeout: resetTimeout,
		now:          time.Now,
		logger:       OrNop(logger),
		state:        CircuitStateClosed,
	}
}

// State returns the current state, moving OPEN to HALF_OPEN once the timeout has passed.
func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.refreshLocked()
	return cb.state
}

// Allow reports whether a call may be attempted.
func (cb *CircuitBreaker) Allow() bool {
	return cb.State() != CircuitStateOpen
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state != CircuitStateClosed {
		cb.transitionLocked(CircuitStateClosed)
	}
	cb.failures = 0
}

// RecordFailure counts a failure. A positive timeout overrides the default
// open duration, e.g. for rate limits.
func (cb *CircuitBreaker) RecordFailure(timeout time.Duration) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	cb.failures++
	if timeout <= 0 {
		timeout = cb.resetTimeout
	}

	// HALF_OPEN 에서 실패하면 즉시 다시 차단
	if cb.state == CircuitStateHalfOpen || cb.failures >= cb.threshold {
		cb.openUntil = cb.now().Add(timeout)
		if cb.state != CircuitStateOpen {
			cb.transitionLocked(CircuitStateOpen)
		}
		return
	}

	cb.logger.Warn("Circuit breaker failure recorded",
		zap.String("breaker", cb.name),
		zap.Int("count", cb.failures),
		zap.Int("threshold", cb.threshold),
	)
}

func (cb *CircuitBreaker) Reset() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.state = CircuitStateClosed
	cb.failures = 0
	cb.openUntil = time.Time{}
}

func (cb *CircuitBreaker) refreshLocked() {
	if cb.state == CircuitStateOpen && !cb.now().Before(cb.openUntil) {
		cb.transitionLocked(CircuitStateHalfOpen)
	}
}

func (cb *CircuitBreaker) transitionLocked(next CircuitState) {
	prev := cb.state
	cb.state = next

	fields := []zap.Field{
		zap.String("breaker", cb.name),
		zap.String("from", prev.String()),
		zap.String("to", next.String()),
		zap.Int("failure_count", cb.failures),
	}
	if next == CircuitStateOpen {
		fields = append(fields, zap.Time("open_until", cb.openUntil))
		cb.logger.Error("Circuit breaker opened", fields...)
		return
	}
	cb.logger.Info("Circuit breaker state transition", fields...)
}
