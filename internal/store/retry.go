package store

import (
	"context"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/jeevibe/engine/ent"
	"github.com/jeevibe/engine/internal/errs"
)

// Retry policy for transient store failures and transaction conflicts:
// up to 5 attempts, exponential backoff from 100ms, ±25% jitter.
const (
	retryAttempts = 5
	retryBase     = 100 * time.Millisecond
	retryJitter   = 0.25
)

// Retry runs fn until it succeeds, fails with a non-transient error, or the
// attempt budget is spent. The final transient error is surfaced as
// TRANSIENT so callers know the operation is safe to retry.
func Retry(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := range retryAttempts {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !retryable(err) {
			return err
		}
		if attempt == retryAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff(attempt)):
		}
	}
	if errs.KindOf(lastErr) == errs.Transient {
		return lastErr
	}
	return errs.Wrap(errs.Transient, "RETRY_EXHAUSTED", "store unavailable past retry budget", lastErr)
}

func backoff(attempt int) time.Duration {
	wait := float64(retryBase) * math.Pow(2, float64(attempt))
	jitter := wait * retryJitter * (2*rand.Float64() - 1)
	wait += jitter
	if wait < 0 {
		wait = 0
	}
	return time.Duration(wait)
}

// retryable reports whether err is worth another attempt.
func retryable(err error) bool {
	if err == nil {
		return false
	}
	if errs.IsTransient(err) {
		return true
	}
	// Only explicitly classified errors are retried otherwise; typed domain
	// errors (NOT_FOUND, STATE_CONFLICT, ...) pass straight through.
	return false
}

// classify maps a raw store error onto the engine taxonomy. SQLite lock and
// busy conditions are transaction conflicts; everything else from the driver
// is treated as a transient store failure.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if ent.IsNotFound(err) {
		return errs.Wrap(errs.NotFound, "NOT_FOUND", "record not found", err)
	}
	if ent.IsConstraintError(err) {
		return errs.Wrap(errs.StateConflict, "CONSTRAINT", "constraint violated", err)
	}
	msg := err.Error()
	if strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY") {
		return errs.Wrap(errs.Transient, "TX_CONFLICT", "transaction conflict", err)
	}
	return errs.Wrap(errs.Transient, "STORE_UNAVAILABLE", "store error", err)
}
