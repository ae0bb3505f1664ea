package usecase

import (
	"context"
	"time"

	"github.com/iho/fiscledger/internal/domain"
)

// JournalEntryRepository defines data access for journal entries and their lines.
type JournalEntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.JournalEntry) error
	Update(ctx context.Context, tx Transaction, entry *domain.JournalEntry) error
	Delete(ctx context.Context, tx Transaction, id string) error
	GetByID(ctx context.Context, id string) (*domain.JournalEntry, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.JournalEntry, error)
	List(ctx context.Context, filter EntryFilter) ([]*domain.JournalEntry, error)
}

// EntryFilter narrows entry listings. Empty fields match everything.
type EntryFilter struct {
	FiscalYearID string
	JournalCode  string
	Status       domain.EntryStatus
	Limit        int
	Offset       int
}

// EntrySequence allocates entry numbers unique per (fiscal year, journal code).
type EntrySequence interface {
	Next(ctx context.Context, tx Transaction, fiscalYearID, journalCode string) (int, error)
}

// FiscalYearRepository defines data access for fiscal years.
type FiscalYearRepository interface {
	Create(ctx context.Context, fy *domain.FiscalYear) error
	GetByID(ctx context.Context, id string) (*domain.FiscalYear, error)
	UpdateStatus(ctx context.Context, fy *domain.FiscalYear) error
	List(ctx context.Context, limit, offset int) ([]*domain.FiscalYear, error)
}

// AccountRepository defines data access for the chart of accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	// MissingIDs returns the subset of ids that are unknown or summary accounts.
	MissingIDs(ctx context.Context, ids []string) ([]string, error)
}

// ThirdPartyRepository defines data access for counterparties.
type ThirdPartyRepository interface {
	Create(ctx context.Context, tp *domain.ThirdParty) error
	List(ctx context.Context, limit, offset int) ([]*domain.ThirdParty, error)
	MissingIDs(ctx context.Context, ids []string) ([]string, error)
}

// LedgerRepository defines data access for ledger-wide checks.
type LedgerRepository interface {
	// PostedTotals sums debit and credit minor units over posted lines of a fiscal year.
	PostedTotals(ctx context.Context, fiscalYearID string) (debit, credit int64, err error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) (int64, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// Retrier re-runs an operation on transient storage conflicts.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a claimed key so a failed request can be retried.
	Release(ctx context.Context, key string) error
}
