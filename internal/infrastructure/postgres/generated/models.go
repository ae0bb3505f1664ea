package generated

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Account struct {
	ID          string             `json:"id"`
	Number      string             `json:"number"`
	Label       string             `json:"label"`
	IsSummary   bool               `json:"is_summary"`
	IsAuxiliary bool               `json:"is_auxiliary"`
	ParentID    pgtype.Text        `json:"parent_id"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
}

type EntrySequence struct {
	FiscalYearID string `json:"fiscal_year_id"`
	JournalCode  string `json:"journal_code"`
	LastNumber   int32  `json:"last_number"`
}

type FiscalYear struct {
	ID             string             `json:"id"`
	YearNumber     int32              `json:"year_number"`
	StartDate      pgtype.Date        `json:"start_date"`
	EndDate        pgtype.Date        `json:"end_date"`
	Status         string             `json:"status"`
	ClosingEntryID pgtype.Text        `json:"closing_entry_id"`
	CreatedAt      pgtype.Timestamptz `json:"created_at"`
}

type JournalEntry struct {
	ID           string             `json:"id"`
	FiscalYearID string             `json:"fiscal_year_id"`
	JournalCode  string             `json:"journal_code"`
	EntryNumber  int32              `json:"entry_number"`
	EntryDate    pgtype.Date        `json:"entry_date"`
	Description  string             `json:"description"`
	Reference    string             `json:"reference"`
	Status       string             `json:"status"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	CreatedBy    string             `json:"created_by"`
	PostedAt     pgtype.Timestamptz `json:"posted_at"`
	PostedBy     pgtype.Text        `json:"posted_by"`
}

type JournalLine struct {
	ID           string      `json:"id"`
	EntryID      string      `json:"entry_id"`
	LineNumber   int32       `json:"line_number"`
	AccountID    string      `json:"account_id"`
	ThirdPartyID pgtype.Text `json:"third_party_id"`
	Label        string      `json:"label"`
	DebitMinor   int64       `json:"debit_minor"`
	CreditMinor  int64       `json:"credit_minor"`
	Currency     string      `json:"currency"`
}

type OutboxEvent struct {
	ID            string             `json:"id"`
	AggregateID   string             `json:"aggregate_id"`
	AggregateType string             `json:"aggregate_type"`
	EventType     string             `json:"event_type"`
	Payload       []byte             `json:"payload"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	PublishedAt   pgtype.Timestamptz `json:"published_at"`
	Published     bool               `json:"published"`
}

type ThirdParty struct {
	ID        string             `json:"id"`
	Code      string             `json:"code"`
	Name      string             `json:"name"`
	Type      string             `json:"type"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}
