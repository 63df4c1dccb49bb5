//go:build !integration

package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func testConfig(failures, successes int, timeout time.Duration) Config {
	return Config{
		FailureThreshold: failures,
		SuccessThreshold: successes,
		Timeout:          timeout,
		Name:             "test",
	}
}

func fail(cb *CircuitBreaker) error {
	return cb.Execute(context.Background(), func() error { return errBoom })
}

func succeed(cb *CircuitBreaker) error {
	return cb.Execute(context.Background(), func() error { return nil })
}

func TestCircuitBreaker_StaysClosedOnSuccess(t *testing.T) {
	cb := New(DefaultConfig())

	require.NoError(t, succeed(cb))
	assert.Equal(t, StateClosed, cb.State())
	assert.False(t, cb.IsOpen())
}

func TestCircuitBreaker_OpensAtThreshold(t *testing.T) {
	cb := New(testConfig(2, 1, 100*time.Millisecond))

	assert.Equal(t, errBoom, fail(cb))
	assert.Equal(t, StateClosed, cb.State())

	assert.Equal(t, errBoom, fail(cb))
	assert.Equal(t, StateOpen, cb.State())

	// Calls are rejected without running fn while open
	called := false
	err := cb.Execute(context.Background(), func() error {
		called = true
		return nil
	})
	assert.Equal(t, ErrCircuitOpen, err)
	assert.False(t, called)
}

func TestCircuitBreaker_RecoversThroughHalfOpen(t *testing.T) {
	cb := New(testConfig(2, 2, 50*time.Millisecond))

	require.Error(t, fail(cb))
	require.Error(t, fail(cb))
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	require.NoError(t, succeed(cb))
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, succeed(cb))
	assert.Equal(t, StateClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := New(testConfig(2, 2, 50*time.Millisecond))

	require.Error(t, fail(cb))
	require.Error(t, fail(cb))
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(60 * time.Millisecond)

	assert.Equal(t, errBoom, fail(cb))
	assert.Equal(t, StateOpen, cb.State())
}

func TestCircuitBreaker_GetStats(t *testing.T) {
	cb := New(DefaultConfig())

	stats := cb.GetStats()
	assert.Equal(t, "closed", stats.State)
	assert.True(t, stats.IsHealthy)
	assert.Equal(t, 0, stats.FailureCount)

	_ = fail(cb)

	stats = cb.GetStats()
	assert.Equal(t, 1, stats.FailureCount)
	assert.False(t, stats.LastFailure.IsZero())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "open", StateOpen.String())
	assert.Equal(t, "half-open", StateHalfOpen.String())
	assert.Equal(t, "unknown", State(42).String())
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	assert.Equal(t, 5, config.FailureThreshold)
	assert.Equal(t, 2, config.SuccessThreshold)
	assert.Equal(t, 30*time.Second, config.Timeout)
	assert.Equal(t, "circuit-breaker", config.Name)
}
