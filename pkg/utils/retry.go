package utils

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Retry executes an operation with exponential back-off between attempts.
type Retry struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Log         *zap.Logger
}

// Do runs fn until it succeeds or MaxAttempts is reached. The delay doubles
// after each failed attempt.
func (r Retry) Do(operation string, fn func() error) error {
	attempts := r.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	delay := r.BaseDelay
	var lastErr error

	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt < attempts {
			if r.Log != nil {
				r.Log.Warn("operation failed, retrying",
					zap.String("operation", operation),
					zap.Int("attempt", attempt),
					zap.Int("max_attempts", attempts),
					zap.Duration("delay", delay),
					zap.Error(lastErr))
			}
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operation, attempts, lastErr)
}
