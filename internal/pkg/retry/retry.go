// Package retry implements a bounded retry-then-fallback policy as an
// explicit wrapper: the primary operation is attempted up to MaxAttempts
// times with no backoff, after which the fallback runs exactly once. The
// fallback itself is never retried.
package retry

import "gift-occasions/internal/pkg/errs"

var ErrExhausted = errs.New("retry budget exhausted")

type Policy struct {
	MaxAttempts int
}

// Do runs op under the policy. The fallback receives the last primary error
// and its result (or error) is returned as-is; a nil fallback yields
// ErrExhausted marked with the last primary error.
func Do[T any](p Policy, op func() (T, error), fallback func(lastErr error) (T, error)) (T, error) {
	var zero T
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		result, err := op()
		if err == nil {
			return result, nil
		}
		lastErr = err
	}

	if fallback == nil {
		return zero, errs.Mark(lastErr, ErrExhausted)
	}
	return fallback(lastErr)
}
