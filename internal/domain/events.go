package domain

import "time"

// Event types
const (
	EventTypeEntryCreated = "journal_entry.created"
	EventTypeEntryPosted  = "journal_entry.posted"
	EventTypeEntryVoided  = "journal_entry.voided"
	EventTypeEntryDeleted = "journal_entry.deleted"
)

// AggregateTypeJournalEntry is the outbox aggregate type for entries.
const AggregateTypeJournalEntry = "journal_entry"

// OutboxEvent represents an event to be published
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// NewEntryEventPayload captures the entry state at the time of the event.
func NewEntryEventPayload(e *JournalEntry, actor string) map[string]any {
	p := map[string]any{
		"entry_id":       e.ID(),
		"fiscal_year_id": e.FiscalYearID(),
		"journal_code":   e.JournalCode(),
		"entry_number":   e.EntryNumber(),
		"status":         string(e.Status()),
		"total_debit":    e.TotalDebit().MajorUnits().StringFixed(MinorUnitExponent),
		"total_credit":   e.TotalCredit().MajorUnits().StringFixed(MinorUnitExponent),
		"currency":       DefaultCurrency,
		"actor":          actor,
	}

	if at := e.PostedAt(); at != nil {
		p["posted_at"] = at.UTC().Format(time.RFC3339)
	}

	return p
}
