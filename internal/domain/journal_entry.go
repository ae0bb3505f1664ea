package domain

import (
	"fmt"
	"time"
)

// EntryStatus is the lifecycle state of a journal entry.
type EntryStatus string

const (
	EntryStatusDraft  EntryStatus = "draft"
	EntryStatusPosted EntryStatus = "posted"
	EntryStatusVoided EntryStatus = "voided"
)

// IsValid checks if the status is one of the known states.
func (s EntryStatus) IsValid() bool {
	switch s {
	case EntryStatusDraft, EntryStatusPosted, EntryStatusVoided:
		return true
	}
	return false
}

// Audit holds creation metadata shared by persisted aggregates.
type Audit struct {
	CreatedAt time.Time
	CreatedBy string
}

// NewJournalEntryParams carries the header of a new entry. EntryNumber is
// allocated by the caller's sequence before construction.
type NewJournalEntryParams struct {
	ID           string
	FiscalYearID string
	JournalCode  string
	EntryNumber  int
	EntryDate    time.Time
	Description  string
	Reference    string
	Audit        Audit
}

// EntryOption customises a JournalEntry at construction.
type EntryOption func(*JournalEntry)

// WithStrictLineRemoval makes RemoveLine report ErrLineNotFound for unknown
// line IDs instead of ignoring them.
func WithStrictLineRemoval() EntryOption {
	return func(e *JournalEntry) {
		e.strictRemoval = true
	}
}

// JournalEntry is the aggregate root of a bookkeeping transaction. It owns its
// lines and status; callers must not share one instance between goroutines.
type JournalEntry struct {
	Audit

	id           string
	fiscalYearID string
	journalCode  string
	entryNumber  int
	entryDate    time.Time
	description  string
	reference    string
	status       EntryStatus
	lines        []*JournalLine
	postedAt     *time.Time
	postedBy     *string

	strictRemoval bool
}

// NewJournalEntry creates a draft entry with no lines.
func NewJournalEntry(p NewJournalEntryParams, opts ...EntryOption) *JournalEntry {
	e := &JournalEntry{
		Audit:        p.Audit,
		id:           p.ID,
		fiscalYearID: p.FiscalYearID,
		journalCode:  p.JournalCode,
		entryNumber:  p.EntryNumber,
		entryDate:    p.EntryDate,
		description:  p.Description,
		reference:    p.Reference,
		status:       EntryStatusDraft,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *JournalEntry) ID() string           { return e.id }
func (e *JournalEntry) FiscalYearID() string { return e.fiscalYearID }
func (e *JournalEntry) JournalCode() string  { return e.journalCode }
func (e *JournalEntry) EntryNumber() int     { return e.entryNumber }
func (e *JournalEntry) EntryDate() time.Time { return e.entryDate }
func (e *JournalEntry) Description() string  { return e.description }
func (e *JournalEntry) Reference() string    { return e.reference }
func (e *JournalEntry) Status() EntryStatus  { return e.status }
func (e *JournalEntry) PostedAt() *time.Time { return e.postedAt }
func (e *JournalEntry) PostedBy() *string    { return e.postedBy }
func (e *JournalEntry) LineCount() int       { return len(e.lines) }
func (e *JournalEntry) IsPosted() bool       { return e.status == EntryStatusPosted }
func (e *JournalEntry) IsVoided() bool       { return e.status == EntryStatusVoided }

// Lines returns a copy of the lines in line-number order.
func (e *JournalEntry) Lines() []JournalLine {
	out := make([]JournalLine, len(e.lines))
	for i, l := range e.lines {
		out[i] = *l
	}
	return out
}

// TotalDebit sums the debit side in minor units. Lines admitted by AddLine and
// ReplaceLines never overflow; see Totals for the checked form.
func (e *JournalEntry) TotalDebit() Money {
	debit, _, _ := e.Totals()
	return debit
}

// TotalCredit sums the credit side in minor units.
func (e *JournalEntry) TotalCredit() Money {
	_, credit, _ := e.Totals()
	return credit
}

// Totals sums both sides with overflow checks. It returns ErrMoneyOverflow
// when either side does not fit in int64 minor units.
func (e *JournalEntry) Totals() (debit, credit Money, err error) {
	return sumLines(e.lines)
}

func sumLines(lines []*JournalLine) (debit, credit Money, err error) {
	debit, credit = MoneyFromMinorUnits(0), MoneyFromMinorUnits(0)
	for _, l := range lines {
		if debit, err = debit.Add(l.debit); err != nil {
			return Money{}, Money{}, fmt.Errorf("debit total at line %d: %w", l.lineNumber, err)
		}
		if credit, err = credit.Add(l.credit); err != nil {
			return Money{}, Money{}, fmt.Errorf("credit total at line %d: %w", l.lineNumber, err)
		}
	}
	return debit, credit, nil
}

// IsBalanced reports whether the entry has at least two lines and its debits
// equal its credits exactly. An overflowing side is never balanced.
func (e *JournalEntry) IsBalanced() bool {
	debit, credit, err := e.Totals()
	return err == nil && len(e.lines) >= 2 && debit.Equal(credit)
}

func (e *JournalEntry) checkEditable() error {
	switch e.status {
	case EntryStatusPosted:
		return ErrEntryPosted
	case EntryStatusVoided:
		return ErrEntryVoided
	}
	return nil
}

// AddLine appends a copy of line and numbers it after the current last line.
// The caller's line is left untouched. A line ID already on the entry, or an
// amount that would overflow the running totals, is rejected.
func (e *JournalEntry) AddLine(line *JournalLine) error {
	if err := e.checkEditable(); err != nil {
		return err
	}

	if line == nil {
		return fmt.Errorf("%w: nil line", ErrInvalidLine)
	}

	for _, l := range e.lines {
		if l.id == line.id {
			return fmt.Errorf("%w: duplicate line id %s", ErrInvalidLine, line.id)
		}
	}

	cp := *line
	cp.lineNumber = len(e.lines) + 1

	lines := append(e.lines[:len(e.lines):len(e.lines)], &cp)
	if _, _, err := sumLines(lines); err != nil {
		return err
	}

	e.lines = lines

	return nil
}

// RemoveLine drops the line with the given ID and renumbers the rest 1..N.
// Unknown IDs are ignored unless the entry uses strict removal.
func (e *JournalEntry) RemoveLine(lineID string) error {
	if err := e.checkEditable(); err != nil {
		return err
	}

	idx := -1
	for i, l := range e.lines {
		if l.id == lineID {
			idx = i
			break
		}
	}

	if idx < 0 {
		if e.strictRemoval {
			return fmt.Errorf("%w: %s", ErrLineNotFound, lineID)
		}
		return nil
	}

	e.lines = append(e.lines[:idx], e.lines[idx+1:]...)
	e.renumber()

	return nil
}

// ReplaceLines swaps the whole line set for copies of lines, numbering them
// 1..N. The set is rejected as a whole on a nil line, a duplicate line ID or
// overflowing totals, leaving the current lines in place.
func (e *JournalEntry) ReplaceLines(lines []*JournalLine) error {
	if err := e.checkEditable(); err != nil {
		return err
	}

	seen := make(map[string]struct{}, len(lines))
	copies := make([]*JournalLine, 0, len(lines))
	for i, l := range lines {
		if l == nil {
			return fmt.Errorf("%w: nil line at position %d", ErrInvalidLine, i+1)
		}
		if _, dup := seen[l.id]; dup {
			return fmt.Errorf("%w: duplicate line id %s", ErrInvalidLine, l.id)
		}
		seen[l.id] = struct{}{}

		cp := *l
		cp.lineNumber = i + 1
		copies = append(copies, &cp)
	}

	if _, _, err := sumLines(copies); err != nil {
		return err
	}

	e.lines = copies

	return nil
}

// Amend updates the descriptive header fields of a draft entry.
func (e *JournalEntry) Amend(description string, entryDate time.Time, reference string) error {
	if err := e.checkEditable(); err != nil {
		return err
	}

	e.description = description
	e.entryDate = entryDate
	e.reference = reference

	return nil
}

func (e *JournalEntry) renumber() {
	for i, l := range e.lines {
		l.lineNumber = i + 1
	}
}

// Post finalises a balanced draft. The transition is one-way.
func (e *JournalEntry) Post(userID string, now time.Time) error {
	switch e.status {
	case EntryStatusPosted:
		return ErrAlreadyPosted
	case EntryStatusVoided:
		return ErrEntryVoided
	}

	debit, credit, err := e.Totals()
	if err != nil {
		return err
	}
	if len(e.lines) < 2 || !debit.Equal(credit) {
		return fmt.Errorf("%w: debit %s, credit %s, %d lines",
			ErrUnbalancedEntry, debit, credit, len(e.lines))
	}

	postedAt := now
	postedBy := userID

	e.status = EntryStatusPosted
	e.postedAt = &postedAt
	e.postedBy = &postedBy

	return nil
}

// Void cancels a draft entry. Posted entries must be reversed by a contra entry.
func (e *JournalEntry) Void() error {
	switch e.status {
	case EntryStatusPosted:
		return ErrCannotVoidPosted
	case EntryStatusVoided:
		return ErrEntryVoided
	}

	e.status = EntryStatusVoided

	return nil
}
