package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// SQLSTATE codes worth another attempt: the conflicting transaction has
// finished by the time we retry.
const (
	pgErrDeadlock             = "40P01"
	pgErrSerializationFailure = "40001"
)

// Retrier implements usecase.Retrier. Only serialization failures and
// deadlocks are retried; everything else, domain errors included, is returned
// on the first attempt.
type Retrier struct {
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
	logger          zerolog.Logger
}

// RetrierOption tunes a Retrier.
type RetrierOption func(*Retrier)

// WithMaxRetries caps the number of retries after the first attempt.
func WithMaxRetries(n int) RetrierOption {
	return func(r *Retrier) { r.maxRetries = n }
}

// WithBackoff sets the exponential backoff bounds.
func WithBackoff(initial, ceiling, elapsed time.Duration) RetrierOption {
	return func(r *Retrier) {
		r.initialInterval = initial
		r.maxInterval = ceiling
		r.maxElapsedTime = elapsed
	}
}

// NewRetrier creates a Retrier: 3 retries, 50ms doubling up to 1s, 10s overall.
func NewRetrier(logger zerolog.Logger, opts ...RetrierOption) *Retrier {
	r := &Retrier{
		maxRetries:      3,
		initialInterval: 50 * time.Millisecond,
		maxInterval:     time.Second,
		maxElapsedTime:  10 * time.Second,
		logger:          logger,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Retry runs operation until it succeeds, returns a permanent error, or the
// retry budget is spent. The last error is returned unchanged.
func (r *Retrier) Retry(ctx context.Context, operation func() error) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = r.initialInterval
	exp.MaxInterval = r.maxInterval
	exp.MaxElapsedTime = r.maxElapsedTime

	policy := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(r.maxRetries)), ctx)

	attempt := 0
	notify := func(err error, wait time.Duration) {
		ev := r.logger.Warn().Err(err).Int("attempt", attempt).Dur("backoff", wait)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			ev = ev.Str("sqlstate", pgErr.Code)
		}
		ev.Msg("transaction conflict, retrying")
	}

	return backoff.RetryNotify(func() error {
		attempt++

		err := operation()
		if err != nil && !isRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}, policy, notify)
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrDeadlock || pgErr.Code == pgErrSerializationFailure
}
