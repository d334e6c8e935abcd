package api

import (
	"context"
	"math/rand"
	"time"

	"github.com/sec4dev/sec4dev-go/internal/apierrors"
)

// RetryConfig configures retry behavior for failed HTTP requests.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts after the first one.
	MaxRetries int
	// BaseDelay is the delay before the first retry; it doubles per attempt.
	BaseDelay time.Duration
	// MaxJitter bounds the random delay added on top of the exponential one.
	MaxJitter time.Duration
	// RetryableOn determines if a status code should trigger a retry.
	RetryableOn func(statusCode int) bool
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:  DefaultMaxRetries,
		BaseDelay:   DefaultRetryDelay,
		MaxJitter:   100 * time.Millisecond,
		RetryableOn: apierrors.IsRetryableStatus,
	}
}

// CanRetry reports whether budget remains after the given 0-based attempt.
func (r *RetryConfig) CanRetry(attempt int) bool {
	return attempt < r.MaxRetries
}

// ShouldRetry determines if a response status should be retried after the
// given attempt.
func (r *RetryConfig) ShouldRetry(attempt int, statusCode int) bool {
	if !r.CanRetry(attempt) {
		return false
	}
	return r.RetryableOn(statusCode)
}

// Delay returns BaseDelay * 2^attempt plus a random jitter in [0, MaxJitter).
func (r *RetryConfig) Delay(attempt int) time.Duration {
	delay := r.BaseDelay << uint(attempt)
	if delay < 0 {
		delay = r.BaseDelay
	}
	if r.MaxJitter > 0 {
		delay += time.Duration(rand.Int63n(int64(r.MaxJitter)))
	}
	return delay
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
