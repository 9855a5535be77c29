package fetchcache

import (
	"context"
	"fmt"
	"time"

	"github.com/IsaacDSC/eventory/pkg/ctxlogger"
)

type result struct {
	value any
	err   error
}

// fetchWithRetry runs fn until it succeeds or cfg.MaxRetries retries are
// spent, waiting backoff(attempt) between attempts. Errors rejected by
// retryIf are returned at once.
func (m *Manager) fetchWithRetry(ctx context.Context, fn Fn, cfg Config, retryIf RetryDecider) (any, error) {
	for attempt := 0; ; attempt++ {
		v, err := m.attempt(ctx, fn, cfg.RequestTimeout)
		if err == nil {
			return v, nil
		}
		if attempt >= cfg.MaxRetries || ctx.Err() != nil || !retryIf(err) {
			return nil, err
		}

		delay := backoff(attempt)
		ctxlogger.GetLogger(ctx).Debug("Fetch attempt failed, backing off",
			"attempt", attempt+1,
			"max_retries", cfg.MaxRetries,
			"delay", delay,
		)

		if err := m.sleep(ctx, delay); err != nil {
			return nil, err
		}
	}
}

// backoff returns 2^attempt seconds, capped at 2^maxBackoffShift so the
// shift cannot overflow into a negative duration.
func backoff(attempt int) time.Duration {
	return baseBackoff << min(attempt, maxBackoffShift)
}

// attempt races fn against timeout. On timeout the attempt context is
// cancelled and fn's late result is discarded.
func (m *Manager) attempt(ctx context.Context, fn Fn, timeout time.Duration) (any, error) {
	attemptCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("fetch panicked: %v", r)}
			}
		}()
		v, err := fn(attemptCtx)
		done <- result{value: v, err: err}
	}()

	timer := m.clock.Timer(timeout)
	defer timer.Stop()

	select {
	case r := <-done:
		return r.value, r.err
	case <-timer.C:
		return nil, ErrRequestTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (m *Manager) sleep(ctx context.Context, d time.Duration) error {
	timer := m.clock.Timer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
