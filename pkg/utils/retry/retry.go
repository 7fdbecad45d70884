package retry

import (
	"context"
	"errors"
	"time"
)

// ErrRetry marks errors which are worth another attempt.
var ErrRetry = errors.New("retry")

// Backoff blocks until the next attempt.
//
// It returns ctx.Err() when ctx is done before that.
type Backoff func(context.Context) error

// Exponential returns a Backoff which waits initial, initial*factor, initial*factor^2, ...
//
// When max is positive, each wait is capped to max.
func Exponential(initial time.Duration, factor float64, max time.Duration) Backoff {
	interval := initial
	return func(ctx context.Context) error {
		wait := interval
		if 0 < max && max < wait {
			wait = max
		}
		timer := time.NewTimer(wait)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			interval = time.Duration(float64(interval) * factor)
			return nil
		}
	}
}

// Do calls f until it returns something other than ErrRetry, up to attempts times.
//
// Between calls, Do waits with b.
// f is told whether it is the final attempt; what the final attempt returns is returned as is.
// When ctx is done while waiting, Do returns the last value with the error of b.
func Do[T any](ctx context.Context, b Backoff, attempts int, f func(final bool) (T, error)) (T, error) {
	for n := 1; ; n++ {
		final := attempts <= n
		v, err := f(final)
		if final || !errors.Is(err, ErrRetry) {
			return v, err
		}
		if berr := b(ctx); berr != nil {
			return v, berr
		}
	}
}
