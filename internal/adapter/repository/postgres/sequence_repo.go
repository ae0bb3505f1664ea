package postgres

import (
	"context"

	"github.com/iho/fiscledger/internal/infrastructure/postgres/generated"
	"github.com/iho/fiscledger/internal/usecase"
)

// EntrySequence implements usecase.EntrySequence with an upserted counter row.
// The row stays locked until the caller's transaction ends, so numbers are
// gap-free for committed entries.
type EntrySequence struct{}

// NewEntrySequence creates a new EntrySequence.
func NewEntrySequence() *EntrySequence {
	return &EntrySequence{}
}

// Next returns the next entry number for the journal within the fiscal year.
func (s *EntrySequence) Next(ctx context.Context, tx usecase.Transaction, fiscalYearID, journalCode string) (int, error) {
	queries := generated.New(tx.(*Tx).PgxTx())

	n, err := queries.NextEntryNumber(ctx, generated.NextEntryNumberParams{
		FiscalYearID: fiscalYearID,
		JournalCode:  journalCode,
	})
	if err != nil {
		return 0, err
	}

	return int(n), nil
}
