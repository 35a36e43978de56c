package retryutil

import (
	"context"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	defaultBaseDelay = 500 * time.Millisecond
	defaultMaxDelay  = 10 * time.Second
)

// Policy bounds how an operation is retried.
type Policy struct {
	// MaxRetries is the number of attempts after the first one. Zero disables
	// retrying.
	MaxRetries uint64
	BaseDelay  time.Duration
	MaxDelay   time.Duration
	// Retryable reports whether err may succeed on another attempt. Nil means
	// nothing is retried.
	Retryable func(err error) bool
	// RetryAfter returns a server-requested wait for err, or zero.
	RetryAfter func(err error) time.Duration
}

// Do runs fn until it succeeds, returns a non-retryable error, runs out of
// attempts, or ctx is done. The last error from fn is returned.
func Do(ctx context.Context, logger *slog.Logger, name string, p Policy, fn func(ctx context.Context) error) error {
	if fn == nil {
		return nil
	}
	base := p.BaseDelay
	if base <= 0 {
		base = defaultBaseDelay
	}
	maxDelay := p.MaxDelay
	if maxDelay <= 0 {
		maxDelay = defaultMaxDelay
	}
	backoff := retry.WithMaxRetries(p.MaxRetries, retry.WithCappedDuration(maxDelay, retry.NewExponential(base)))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if p.Retryable == nil || !p.Retryable(err) || uint64(attempt) > p.MaxRetries {
			return err
		}
		wait := time.Duration(0)
		if p.RetryAfter != nil {
			wait = p.RetryAfter(err)
		}
		if logger != nil {
			logger.Warn(name+"_retry", "attempt", attempt, "retry_after", wait.String(), "error", err.Error())
		}
		if wait > 0 {
			if wait > maxDelay {
				wait = maxDelay
			}
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return err
			case <-timer.C:
			}
		}
		return retry.RetryableError(err)
	})
}
