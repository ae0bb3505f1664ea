package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/fiscledger/internal/domain"
	"github.com/iho/fiscledger/internal/infrastructure/postgres/generated"
	"github.com/iho/fiscledger/internal/usecase"
)

// JournalEntryRepository implements usecase.JournalEntryRepository.
// An entry row and its lines are always written together.
type JournalEntryRepository struct {
	queries *generated.Queries
}

// NewJournalEntryRepository creates a new JournalEntryRepository.
func NewJournalEntryRepository(pool *pgxpool.Pool) *JournalEntryRepository {
	return newJournalEntryRepository(pool)
}

func newJournalEntryRepository(db generated.DBTX) *JournalEntryRepository {
	return &JournalEntryRepository{queries: generated.New(db)}
}

// Create inserts the entry header and all of its lines.
func (r *JournalEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.JournalEntry) error {
	queries := generated.New(tx.(*Tx).PgxTx())
	s := entry.Snapshot()

	err := queries.CreateJournalEntry(ctx, generated.CreateJournalEntryParams{
		ID:           s.ID,
		FiscalYearID: s.FiscalYearID,
		JournalCode:  s.JournalCode,
		EntryNumber:  int32(s.EntryNumber),
		EntryDate:    timeToPgDate(s.EntryDate),
		Description:  s.Description,
		Reference:    s.Reference,
		Status:       string(s.Status),
		CreatedAt:    timeToPgTimestamptz(s.CreatedAt),
		CreatedBy:    s.CreatedBy,
		PostedAt:     timePtrToPgTimestamptz(s.PostedAt),
		PostedBy:     stringPtrToPgText(s.PostedBy),
	})
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}

	return insertLines(ctx, queries, s)
}

// Update rewrites the header and replaces the line set.
func (r *JournalEntryRepository) Update(ctx context.Context, tx usecase.Transaction, entry *domain.JournalEntry) error {
	queries := generated.New(tx.(*Tx).PgxTx())
	s := entry.Snapshot()

	rows, err := queries.UpdateJournalEntry(ctx, generated.UpdateJournalEntryParams{
		ID:          s.ID,
		EntryDate:   timeToPgDate(s.EntryDate),
		Description: s.Description,
		Reference:   s.Reference,
		Status:      string(s.Status),
		PostedAt:    timePtrToPgTimestamptz(s.PostedAt),
		PostedBy:    stringPtrToPgText(s.PostedBy),
	})
	if err != nil {
		return fmt.Errorf("update journal entry: %w", err)
	}

	if rows == 0 {
		return domain.ErrEntryNotFound
	}

	if err := queries.DeleteJournalLines(ctx, s.ID); err != nil {
		return fmt.Errorf("delete journal lines: %w", err)
	}

	return insertLines(ctx, queries, s)
}

// Delete removes an entry; its lines cascade.
func (r *JournalEntryRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	rows, err := queries.DeleteJournalEntry(ctx, id)
	if err != nil {
		return err
	}

	if rows == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// GetByID retrieves an entry with its lines.
func (r *JournalEntryRepository) GetByID(ctx context.Context, id string) (*domain.JournalEntry, error) {
	row, err := r.queries.GetJournalEntry(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}

	return loadEntry(ctx, r.queries, row)
}

// GetByIDForUpdate retrieves an entry and locks its row until the transaction ends.
func (r *JournalEntryRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.JournalEntry, error) {
	queries := generated.New(tx.(*Tx).PgxTx())

	row, err := queries.GetJournalEntryForUpdate(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, err
	}

	return loadEntry(ctx, queries, row)
}

// List retrieves entries matching the filter, newest first.
func (r *JournalEntryRepository) List(ctx context.Context, filter usecase.EntryFilter) ([]*domain.JournalEntry, error) {
	rows, err := r.queries.ListJournalEntries(ctx, generated.ListJournalEntriesParams{
		FiscalYearID: filter.FiscalYearID,
		JournalCode:  filter.JournalCode,
		Status:       string(filter.Status),
		Limit:        int32(filter.Limit),
		Offset:       int32(filter.Offset),
	})
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return []*domain.JournalEntry{}, nil
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}

	lineRows, err := r.queries.GetJournalLinesByEntries(ctx, ids)
	if err != nil {
		return nil, err
	}

	linesByEntry := make(map[string][]generated.JournalLine, len(rows))
	for _, l := range lineRows {
		linesByEntry[l.EntryID] = append(linesByEntry[l.EntryID], l)
	}

	entries := make([]*domain.JournalEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := rowToJournalEntry(row, linesByEntry[row.ID])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func insertLines(ctx context.Context, queries *generated.Queries, s domain.JournalEntrySnapshot) error {
	for _, l := range s.Lines {
		err := queries.CreateJournalLine(ctx, generated.CreateJournalLineParams{
			ID:           l.ID,
			EntryID:      s.ID,
			LineNumber:   int32(l.LineNumber),
			AccountID:    l.AccountID,
			ThirdPartyID: stringPtrToPgText(l.ThirdPartyID),
			Label:        l.Label,
			DebitMinor:   l.DebitMinor,
			CreditMinor:  l.CreditMinor,
			Currency:     domain.DefaultCurrency,
		})
		if err != nil {
			return fmt.Errorf("insert journal line %d: %w", l.LineNumber, err)
		}
	}

	return nil
}

func loadEntry(ctx context.Context, queries *generated.Queries, row generated.JournalEntry) (*domain.JournalEntry, error) {
	lines, err := queries.GetJournalLinesByEntries(ctx, []string{row.ID})
	if err != nil {
		return nil, err
	}

	return rowToJournalEntry(row, lines)
}

func rowToJournalEntry(row generated.JournalEntry, lines []generated.JournalLine) (*domain.JournalEntry, error) {
	s := domain.JournalEntrySnapshot{
		ID:           row.ID,
		FiscalYearID: row.FiscalYearID,
		JournalCode:  row.JournalCode,
		EntryNumber:  int(row.EntryNumber),
		EntryDate:    row.EntryDate.Time,
		Description:  row.Description,
		Reference:    row.Reference,
		Status:       domain.EntryStatus(row.Status),
		CreatedAt:    row.CreatedAt.Time,
		CreatedBy:    row.CreatedBy,
		PostedAt:     pgTimestamptzToPtr(row.PostedAt),
		PostedBy:     pgTextToPtr(row.PostedBy),
		Lines:        make([]domain.JournalLineSnapshot, 0, len(lines)),
	}

	for _, l := range lines {
		s.Lines = append(s.Lines, domain.JournalLineSnapshot{
			ID:           l.ID,
			LineNumber:   int(l.LineNumber),
			AccountID:    l.AccountID,
			ThirdPartyID: pgTextToPtr(l.ThirdPartyID),
			Label:        l.Label,
			DebitMinor:   l.DebitMinor,
			CreditMinor:  l.CreditMinor,
		})
	}

	entry, err := domain.RestoreJournalEntry(s)
	if err != nil {
		return nil, fmt.Errorf("restore journal entry %s: %w", row.ID, err)
	}

	return entry, nil
}
