package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Operation is a function which will be retried
type Operation func(ctx context.Context) error

// IsRetryableFunc is a function which checks if error is retryable
type IsRetryableFunc func(err error) bool

type Retrier struct {
	backoff     []time.Duration
	logger      *slog.Logger
	IsRetryable IsRetryableFunc
}

type Option func(*Retrier)

// WithBackoff functional option sets custom backoff durations
func WithBackoff(durations []time.Duration) Option {
	return func(r *Retrier) {
		r.backoff = durations
	}
}

// WithAttempts sets a fixed delay between a bounded number of attempts.
// attempts counts the first call, so attempts=3 means two retries.
func WithAttempts(attempts int, delay time.Duration) Option {
	return func(r *Retrier) {
		if attempts < 1 {
			attempts = 1
		}
		backoff := make([]time.Duration, attempts-1)
		for i := range backoff {
			backoff[i] = delay
		}
		r.backoff = backoff
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Retrier) {
		r.logger = l
	}
}

// Always treats every error as retryable.
func Always(error) bool { return true }

func New(IsRetryable IsRetryableFunc, opts ...Option) *Retrier {
	r := &Retrier{
		backoff: []time.Duration{
			1 * time.Second,
			3 * time.Second,
			5 * time.Second,
		},
		logger:      slog.Default(),
		IsRetryable: IsRetryable,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Attempts returns the total number of times Do may call an operation.
func (r *Retrier) Attempts() int {
	return len(r.backoff) + 1
}

// Do executes Operation function and retries it according to configured backoff
func (r *Retrier) Do(ctx context.Context, op Operation) error {
	var lastErr error
	err := op(ctx)
	if err == nil {
		return nil
	}

	if !r.IsRetryable(err) {
		return err
	}
	lastErr = err

	for _, t := range r.backoff {
		r.logger.Debug(
			"operation error, retrying",
			slog.Duration("delay", t),
			slog.Any("error", lastErr),
		)

		timer := time.NewTimer(t)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry interrupted: %w", ctx.Err())
		case <-timer.C:
		}

		err = op(ctx)
		if err == nil {
			return nil
		}
		if !r.IsRetryable(err) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("operation failed after retries: %w", lastErr)
}
