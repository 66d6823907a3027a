package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"

	apperrors "scpulse/internal/errors"
)

// RetryPolicy bounds retries of transient fetch failures
type RetryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultRetryPolicy returns three attempts with exponential backoff
// starting at 500ms and capped at 5s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxAttempts: 3, BaseDelay: 500 * time.Millisecond, MaxDelay: 5 * time.Second}
}

// Backoff returns the wait before the retry that follows attempt (1-based)
func (p RetryPolicy) Backoff(attempt int) time.Duration {
	delay := p.BaseDelay
	if delay <= 0 {
		delay = 500 * time.Millisecond
	}
	for i := 1; i < attempt; i++ {
		delay *= 2
		if p.MaxDelay > 0 && delay >= p.MaxDelay {
			return p.MaxDelay
		}
	}
	if p.MaxDelay > 0 && delay > p.MaxDelay {
		return p.MaxDelay
	}
	return delay
}

// RetryingSource retries transient failures of the wrapped source. Local
// file, configuration and schema errors are returned immediately.
type RetryingSource struct {
	next   Source
	policy RetryPolicy
	logger *slog.Logger
	sleep  func(ctx context.Context, d time.Duration) error
}

// WithRetry wraps next with policy
func WithRetry(next Source, policy RetryPolicy, logger *slog.Logger) *RetryingSource {
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RetryingSource{
		next:   next,
		policy: policy,
		logger: logger.With("component", "retrying_source"),
		sleep:  sleepContext,
	}
}

// Kind returns the wrapped strategy name
func (s *RetryingSource) Kind() string { return KindOf(s.next) }

// Fetch calls the wrapped source until it succeeds, fails permanently or
// the attempts are exhausted. The last error is returned.
func (s *RetryingSource) Fetch(ctx context.Context) (Table, error) {
	var lastErr error
	for attempt := 1; attempt <= s.policy.MaxAttempts; attempt++ {
		table, err := s.next.Fetch(ctx)
		if err == nil {
			if attempt > 1 {
				s.logger.InfoContext(ctx, "Fetch succeeded after retry", slog.Int("attempt", attempt))
			}
			return table, nil
		}
		lastErr = err

		if !retryable(err) || attempt == s.policy.MaxAttempts {
			break
		}

		delay := s.policy.Backoff(attempt)
		s.logger.WarnContext(ctx, "Fetch failed, retrying",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", s.policy.MaxAttempts),
			slog.Duration("backoff", delay),
			slog.String("error", err.Error()))

		if err := s.sleep(ctx, delay); err != nil {
			return Table{}, fmt.Errorf("fetch retry aborted after %d attempts: %w", attempt, err)
		}
	}
	return Table{}, lastErr
}

// retryable reports whether err is a transient data availability failure.
// Remote client errors other than throttling are permanent.
func retryable(err error) bool {
	if !apperrors.IsType(err, apperrors.ErrTypeDataUnavailable) || !apperrors.IsTransient(err) {
		return false
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return gerr.Code == http.StatusTooManyRequests || gerr.Code >= 500
	}
	return true
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
