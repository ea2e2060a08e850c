package llm

import (
	"context"
	"log/slog"
	"time"
)

// RetryPolicy retries a single-attempt call with linear backoff: the sleep
// before attempt n+1 is BaseDelay * n. It is deliberately separate from any
// client so the one-attempt logic and the policy stay independently testable.
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultRetryPolicy matches the batch defaults: 3 attempts, 5s base delay.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: 5 * time.Second}
}

// Do runs fn until it succeeds or MaxAttempts is exhausted. Each failed
// attempt is logged at warning level; exhaustion is logged at error level and
// the last error returned. The backoff sleep honors ctx cancellation.
func (p RetryPolicy) Do(ctx context.Context, logger *slog.Logger, name string, fn func(ctx context.Context) error) error {
	if logger == nil {
		logger = slog.Default()
	}
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		logger.Warn("llm.retry.attempt_failed",
			"op", name,
			"attempt", attempt,
			"max_attempts", attempts,
			"error", lastErr,
		)
		if attempt == attempts {
			break
		}
		select {
		case <-time.After(p.BaseDelay * time.Duration(attempt)):
		case <-ctx.Done():
			logger.Error("llm.retry.canceled", "op", name, "error", ctx.Err())
			return ctx.Err()
		}
	}
	logger.Error("llm.retry.exhausted", "op", name, "attempts", attempts, "error", lastErr)
	return lastErr
}
