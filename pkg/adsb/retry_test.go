package adsb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry(retries int) RetryConfig {
	return RetryConfig{
		MaxRetries:   retries,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

// TestRetryWithBackoffResult tests retry logic.
func TestRetryWithBackoffResult(t *testing.T) {
	t.Run("Success on first attempt", func(t *testing.T) {
		attempts := 0
		result, err := RetryWithBackoffResult(context.Background(), fastRetry(3), func() (int, error) {
			attempts++
			return 42, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 42, result)
		assert.Equal(t, 1, attempts)
	})

	t.Run("Success after retries", func(t *testing.T) {
		attempts := 0
		result, err := RetryWithBackoffResult(context.Background(), fastRetry(3), func() (string, error) {
			attempts++
			if attempts < 3 {
				return "", errors.New("temporary error")
			}
			return "ok", nil
		})

		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 3, attempts)
	})

	t.Run("Max retries exceeded", func(t *testing.T) {
		attempts := 0
		_, err := RetryWithBackoffResult(context.Background(), fastRetry(3), func() (int, error) {
			attempts++
			return 0, errors.New("persistent error")
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "max retries (3) exceeded")
		assert.Contains(t, err.Error(), "persistent error")
		// initial + 3 retries
		assert.Equal(t, 4, attempts)
	})

	t.Run("Single attempt returns the error unwrapped", func(t *testing.T) {
		sentinel := errors.New("boom")
		attempts := 0
		_, err := RetryWithBackoffResult(context.Background(), fastRetry(0), func() (int, error) {
			attempts++
			return 0, sentinel
		})

		assert.Equal(t, 1, attempts)
		assert.Same(t, sentinel, err)
	})

	t.Run("Context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cfg := fastRetry(5)
		cfg.InitialDelay = time.Hour
		cfg.MaxDelay = time.Hour

		attempts := 0
		_, err := RetryWithBackoffResult(ctx, cfg, func() (int, error) {
			attempts++
			cancel()
			return 0, errors.New("error")
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "retry cancelled")
		assert.Equal(t, 1, attempts)
	})

	t.Run("Respects Retry-After", func(t *testing.T) {
		cfg := fastRetry(1)
		cfg.RespectRetryAfter = true

		attempts := 0
		start := time.Now()
		_, err := RetryWithBackoffResult(context.Background(), cfg, func() (int, error) {
			attempts++
			if attempts == 1 {
				return 0, &RateLimitError{StatusCode: 429, RetryAfter: 50 * time.Millisecond, Message: "slow down"}
			}
			return 1, nil
		})

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})
}
