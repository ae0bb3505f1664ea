package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/fiscledger/internal/domain"
	"github.com/iho/fiscledger/internal/infrastructure/postgres/generated"
)

// FiscalYearRepository implements usecase.FiscalYearRepository.
type FiscalYearRepository struct {
	queries *generated.Queries
}

// NewFiscalYearRepository creates a new FiscalYearRepository.
func NewFiscalYearRepository(pool *pgxpool.Pool) *FiscalYearRepository {
	return newFiscalYearRepository(pool)
}

func newFiscalYearRepository(db generated.DBTX) *FiscalYearRepository {
	return &FiscalYearRepository{queries: generated.New(db)}
}

// Create inserts a fiscal year.
func (r *FiscalYearRepository) Create(ctx context.Context, fy *domain.FiscalYear) error {
	err := r.queries.CreateFiscalYear(ctx, generated.CreateFiscalYearParams{
		ID:         fy.ID,
		YearNumber: int32(fy.YearNumber),
		StartDate:  timeToPgDate(fy.StartDate),
		EndDate:    timeToPgDate(fy.EndDate),
		Status:     string(fy.Status),
		CreatedAt:  timeToPgTimestamptz(fy.CreatedAt),
	})
	if isUniqueViolation(err) {
		return domain.ErrInvalidPeriod
	}
	return err
}

// GetByID retrieves a fiscal year by ID.
func (r *FiscalYearRepository) GetByID(ctx context.Context, id string) (*domain.FiscalYear, error) {
	row, err := r.queries.GetFiscalYear(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrFiscalYearNotFound
		}
		return nil, err
	}

	return rowToFiscalYear(row), nil
}

// UpdateStatus persists the status and closing entry.
func (r *FiscalYearRepository) UpdateStatus(ctx context.Context, fy *domain.FiscalYear) error {
	rows, err := r.queries.UpdateFiscalYearStatus(ctx, generated.UpdateFiscalYearStatusParams{
		ID:             fy.ID,
		Status:         string(fy.Status),
		ClosingEntryID: stringPtrToPgText(fy.ClosingEntryID),
	})
	if err != nil {
		return err
	}

	if rows == 0 {
		return domain.ErrFiscalYearNotFound
	}

	return nil
}

// List retrieves fiscal years, most recent first.
func (r *FiscalYearRepository) List(ctx context.Context, limit, offset int) ([]*domain.FiscalYear, error) {
	rows, err := r.queries.ListFiscalYears(ctx, generated.ListFiscalYearsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	years := make([]*domain.FiscalYear, 0, len(rows))
	for _, row := range rows {
		years = append(years, rowToFiscalYear(row))
	}

	return years, nil
}

func rowToFiscalYear(row generated.FiscalYear) *domain.FiscalYear {
	return &domain.FiscalYear{
		ID:             row.ID,
		YearNumber:     int(row.YearNumber),
		StartDate:      row.StartDate.Time,
		EndDate:        row.EndDate.Time,
		Status:         domain.FiscalYearStatus(row.Status),
		ClosingEntryID: pgTextToPtr(row.ClosingEntryID),
		CreatedAt:      row.CreatedAt.Time,
	}
}
