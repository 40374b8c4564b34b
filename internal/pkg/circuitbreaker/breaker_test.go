package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestBreaker(failureThreshold uint32, timeout time.Duration) *CircuitBreaker {
	cfg := DefaultConfig("test-upstream")
	cfg.FailureThreshold = failureThreshold
	cfg.Timeout = timeout
	return New(cfg, nil)
}

func TestExecute_PassesThroughWhenClosed(t *testing.T) {
	// Arrange
	cb := newTestBreaker(3, time.Minute)

	// Act
	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		return nil
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(1), cb.Counts().TotalSuccesses)
}

func TestExecute_OpensAfterConsecutiveFailures(t *testing.T) {
	// Arrange
	cb := newTestBreaker(3, time.Minute)
	upstreamErr := errors.New("connection refused")

	// Act
	for i := 0; i < 3; i++ {
		err := cb.Execute(context.Background(), func(ctx context.Context) error {
			return upstreamErr
		})
		assert.ErrorIs(t, err, upstreamErr)
	}

	// Assert
	assert.Equal(t, StateOpen, cb.State())

	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		t.Fatal("function should not run while the breaker is open")
		return nil
	})
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
}

func TestExecute_RecoversThroughHalfOpen(t *testing.T) {
	// Arrange
	cb := newTestBreaker(1, 10*time.Millisecond)

	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		return errors.New("timeout")
	})
	assert.Error(t, err)
	assert.Equal(t, StateOpen, cb.State())

	// Act
	time.Sleep(20 * time.Millisecond)
	err = cb.Execute(context.Background(), func(ctx context.Context) error {
		return nil
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, StateClosed, cb.State())
}

func TestExecute_FailureInHalfOpenReopens(t *testing.T) {
	// Arrange
	cb := newTestBreaker(1, 10*time.Millisecond)

	err := cb.Execute(context.Background(), func(ctx context.Context) error {
		return errors.New("timeout")
	})
	assert.Error(t, err)

	// Act
	time.Sleep(20 * time.Millisecond)
	err = cb.Execute(context.Background(), func(ctx context.Context) error {
		return errors.New("still down")
	})

	// Assert
	assert.Error(t, err)
	assert.Equal(t, StateOpen, cb.State())
}
