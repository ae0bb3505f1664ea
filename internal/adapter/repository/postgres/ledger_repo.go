package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/fiscledger/internal/infrastructure/postgres/generated"
)

// LedgerRepository implements usecase.LedgerRepository.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// PostedTotals sums debit and credit minor units of posted lines in a fiscal year.
func (r *LedgerRepository) PostedTotals(ctx context.Context, fiscalYearID string) (int64, int64, error) {
	q := generated.New(r.pool)

	result, err := q.GetPostedTotals(ctx, fiscalYearID)
	if err != nil {
		return 0, 0, err
	}

	return result.TotalDebit, result.TotalCredit, nil
}
