package domain

import (
	"fmt"
	"time"
)

// JournalLineSnapshot is the flat, persisted form of a JournalLine.
type JournalLineSnapshot struct {
	ID           string
	LineNumber   int
	AccountID    string
	ThirdPartyID *string
	Label        string
	DebitMinor   int64
	CreditMinor  int64
}

// JournalEntrySnapshot is the flat, persisted form of a JournalEntry.
type JournalEntrySnapshot struct {
	ID           string
	FiscalYearID string
	JournalCode  string
	EntryNumber  int
	EntryDate    time.Time
	Description  string
	Reference    string
	Status       EntryStatus
	CreatedAt    time.Time
	CreatedBy    string
	PostedAt     *time.Time
	PostedBy     *string
	Lines        []JournalLineSnapshot
}

// Snapshot flattens the entry for storage and transport.
func (e *JournalEntry) Snapshot() JournalEntrySnapshot {
	lines := make([]JournalLineSnapshot, len(e.lines))
	for i, l := range e.lines {
		lines[i] = JournalLineSnapshot{
			ID:           l.id,
			LineNumber:   l.lineNumber,
			AccountID:    l.accountID,
			ThirdPartyID: l.thirdPartyID,
			Label:        l.label,
			DebitMinor:   l.debit.MinorUnits(),
			CreditMinor:  l.credit.MinorUnits(),
		}
	}

	return JournalEntrySnapshot{
		ID:           e.id,
		FiscalYearID: e.fiscalYearID,
		JournalCode:  e.journalCode,
		EntryNumber:  e.entryNumber,
		EntryDate:    e.entryDate,
		Description:  e.description,
		Reference:    e.reference,
		Status:       e.status,
		CreatedAt:    e.CreatedAt,
		CreatedBy:    e.CreatedBy,
		PostedAt:     e.postedAt,
		PostedBy:     e.postedBy,
		Lines:        lines,
	}
}

// RestoreJournalEntry rebuilds an entry from storage. Line invariants and the
// status are re-checked; stored line numbers are replaced by their slice position.
func RestoreJournalEntry(s JournalEntrySnapshot) (*JournalEntry, error) {
	e := NewJournalEntry(NewJournalEntryParams{
		ID:           s.ID,
		FiscalYearID: s.FiscalYearID,
		JournalCode:  s.JournalCode,
		EntryNumber:  s.EntryNumber,
		EntryDate:    s.EntryDate,
		Description:  s.Description,
		Reference:    s.Reference,
		Audit:        Audit{CreatedAt: s.CreatedAt, CreatedBy: s.CreatedBy},
	})

	for _, ls := range s.Lines {
		line, err := NewJournalLine(ls.ID, ls.AccountID, ls.Label,
			MoneyFromMinorUnits(ls.DebitMinor), MoneyFromMinorUnits(ls.CreditMinor), ls.ThirdPartyID)
		if err != nil {
			return nil, err
		}

		line.lineNumber = len(e.lines) + 1
		e.lines = append(e.lines, line)
	}

	if s.Status != "" {
		if !s.Status.IsValid() {
			return nil, fmt.Errorf("%w: %q on entry %s", ErrInvalidStatus, s.Status, s.ID)
		}
		e.status = s.Status
	}
	e.postedAt = s.PostedAt
	e.postedBy = s.PostedBy

	return e, nil
}
