package domain

import (
	"fmt"
	"time"
)

// FiscalYearStatus represents whether a fiscal year accepts entries.
type FiscalYearStatus string

const (
	FiscalYearOpen   FiscalYearStatus = "open"
	FiscalYearLocked FiscalYearStatus = "locked"
	FiscalYearClosed FiscalYearStatus = "closed"
)

// FiscalYear is an accounting period entries are recorded against.
type FiscalYear struct {
	ID             string
	YearNumber     int
	StartDate      time.Time
	EndDate        time.Time
	Status         FiscalYearStatus
	ClosingEntryID *string
	CreatedAt      time.Time
}

// AcceptsEntries reports whether entries may still be created or posted.
func (f *FiscalYear) AcceptsEntries() bool {
	return f.Status != FiscalYearClosed
}

// Contains checks if the calendar day of t falls inside the period, both ends
// inclusive. Time of day is ignored.
func (f *FiscalYear) Contains(t time.Time) bool {
	day := calendarDay(t)
	return !day.Before(calendarDay(f.StartDate)) && !day.After(calendarDay(f.EndDate))
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Lock freezes an open year.
func (f *FiscalYear) Lock() error {
	if f.Status != FiscalYearOpen {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, f.Status, FiscalYearLocked)
	}
	f.Status = FiscalYearLocked
	return nil
}

// Close marks the year closed, recording the closing entry when one exists.
func (f *FiscalYear) Close(closingEntryID string) error {
	if f.Status == FiscalYearClosed {
		return fmt.Errorf("%w: already closed", ErrInvalidTransition)
	}

	if closingEntryID != "" {
		f.ClosingEntryID = &closingEntryID
	}
	f.Status = FiscalYearClosed

	return nil
}

// Validate checks the period boundaries.
func (f *FiscalYear) Validate() error {
	if f.EndDate.Before(f.StartDate) {
		return fmt.Errorf("%w: end date before start date", ErrInvalidPeriod)
	}
	return nil
}
