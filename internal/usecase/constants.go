package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	DefaultTransactionTimeout = 10 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// FiscalYearCacheTTL bounds how stale a cached fiscal-year status may be.
	FiscalYearCacheTTL = 5 * time.Minute

	// IdempotencyPending is stored under a claimed idempotency key until the
	// first request finishes.
	IdempotencyPending = "processing"

	// SystemUser is recorded as author when no user identity is available.
	SystemUser = "system"
)
