package httputil

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Default retry policy values, matching the pacing expected by the npm
// search endpoint: a long pause after a failure, a short throttle after
// every successful request.
const (
	DefaultRetries  = 2
	DefaultBackoff  = 5 * time.Second
	DefaultThrottle = 800 * time.Millisecond
)

// ErrRetriesExhausted is returned once the retry budget is spent. It wraps
// the last failure, so errors.Is/As still find the underlying cause.
var ErrRetriesExhausted = errors.New("retries exhausted")

// RetryableError wraps an error to indicate it should trigger a retry.
// Wrap transient failures (network timeouts, 5xx responses, decode errors)
// with this type so that [Retry] knows to attempt the operation again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Policy controls retry pacing for [Retry].
type Policy struct {
	Retries  int           // additional attempts after the first (total attempts = Retries+1)
	Backoff  time.Duration // fixed wait after each failed attempt
	Throttle time.Duration // fixed wait after a successful attempt
}

// DefaultPolicy returns the standard pacing: 2 retries, 5s backoff, 800ms throttle.
func DefaultPolicy() Policy {
	return Policy{Retries: DefaultRetries, Backoff: DefaultBackoff, Throttle: DefaultThrottle}
}

// Retry executes fn up to p.Retries+1 times with a fixed backoff between
// attempts. It only retries errors wrapped with [RetryableError]; other
// errors are returned immediately. On success it sleeps p.Throttle before
// returning, so callers are rate-limited irrespective of retries.
//
// When the budget is spent, the returned error wraps both
// [ErrRetriesExhausted] and the last failure. Returns ctx.Err() if the
// context is cancelled while waiting.
func Retry(ctx context.Context, p Policy, fn func() error) error {
	attempts := max(p.Retries, 0) + 1
	var lastErr error

	for i := 0; i < attempts; i++ {
		if err := fn(); err == nil {
			return sleep(ctx, p.Throttle)
		} else if lastErr = err; !isRetryable(err) {
			return err
		}

		if i < attempts-1 {
			if err := sleep(ctx, p.Backoff); err != nil {
				return err
			}
		}
	}
	return fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, attempts, lastErr)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func isRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}
