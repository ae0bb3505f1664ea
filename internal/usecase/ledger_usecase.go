package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/iho/fiscledger/internal/domain"
)

var (
	// ErrInconsistentLedger is returned when posted debits do not equal posted credits.
	ErrInconsistentLedger = errors.New("ledger is inconsistent: debits do not equal credits")
)

// LedgerReport summarises posted movements of a fiscal year.
type LedgerReport struct {
	FiscalYearID string
	TotalDebit   domain.Money
	TotalCredit  domain.Money
	Balanced     bool
}

// LedgerUseCase handles ledger-wide operations.
type LedgerUseCase struct {
	ledgerRepo LedgerRepository
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(ledgerRepo LedgerRepository) *LedgerUseCase {
	return &LedgerUseCase{
		ledgerRepo: ledgerRepo,
	}
}

// CheckConsistency verifies that posted lines of a fiscal year net to zero.
// The report is returned alongside ErrInconsistentLedger so callers can show the gap.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context, fiscalYearID string) (*LedgerReport, error) {
	debit, credit, err := uc.ledgerRepo.PostedTotals(ctx, fiscalYearID)
	if err != nil {
		return nil, err
	}

	report := &LedgerReport{
		FiscalYearID: fiscalYearID,
		TotalDebit:   domain.MoneyFromMinorUnits(debit),
		TotalCredit:  domain.MoneyFromMinorUnits(credit),
		Balanced:     debit == credit,
	}

	if !report.Balanced {
		return report, fmt.Errorf("%w: debit %s, credit %s", ErrInconsistentLedger, report.TotalDebit, report.TotalCredit)
	}

	return report, nil
}
