package dto

import (
	"time"

	"github.com/iho/fiscledger/internal/domain"
	"github.com/iho/fiscledger/internal/usecase"
)

// LineResponse represents a journal line in API responses.
type LineResponse struct {
	ID           string       `json:"id"`
	LineNumber   int          `json:"line_number"`
	AccountID    string       `json:"account_id"`
	ThirdPartyID *string      `json:"third_party_id,omitempty"`
	Label        string       `json:"label"`
	Debit        domain.Money `json:"debit"`
	Credit       domain.Money `json:"credit"`
}

// EntryResponse represents a journal entry in API responses.
type EntryResponse struct {
	ID           string         `json:"id"`
	FiscalYearID string         `json:"fiscal_year_id"`
	JournalCode  string         `json:"journal_code"`
	EntryNumber  int            `json:"entry_number"`
	EntryDate    string         `json:"entry_date"`
	Description  string         `json:"description"`
	Reference    string         `json:"reference,omitempty"`
	Status       string         `json:"status"`
	Currency     string         `json:"currency"`
	TotalDebit   domain.Money   `json:"total_debit"`
	TotalCredit  domain.Money   `json:"total_credit"`
	Balanced     bool           `json:"balanced"`
	Lines        []LineResponse `json:"lines"`
	CreatedAt    time.Time      `json:"created_at"`
	CreatedBy    string         `json:"created_by"`
	PostedAt     *time.Time     `json:"posted_at,omitempty"`
	PostedBy     *string        `json:"posted_by,omitempty"`
}

// EntryFromDomain converts a domain entry to response.
func EntryFromDomain(e *domain.JournalEntry) *EntryResponse {
	lines := e.Lines()
	out := make([]LineResponse, len(lines))
	for i, l := range lines {
		out[i] = LineResponse{
			ID:         l.ID(),
			LineNumber: l.LineNumber(),
			AccountID:  l.AccountID(),
			Label:      l.Label(),
			Debit:      l.Debit(),
			Credit:     l.Credit(),
		}
		if tp, ok := l.ThirdPartyID(); ok {
			out[i].ThirdPartyID = &tp
		}
	}

	return &EntryResponse{
		ID:           e.ID(),
		FiscalYearID: e.FiscalYearID(),
		JournalCode:  e.JournalCode(),
		EntryNumber:  e.EntryNumber(),
		EntryDate:    e.EntryDate().Format(DateLayout),
		Description:  e.Description(),
		Reference:    e.Reference(),
		Status:       string(e.Status()),
		Currency:     domain.DefaultCurrency,
		TotalDebit:   e.TotalDebit(),
		TotalCredit:  e.TotalCredit(),
		Balanced:     e.IsBalanced(),
		Lines:        out,
		CreatedAt:    e.CreatedAt,
		CreatedBy:    e.CreatedBy,
		PostedAt:     e.PostedAt(),
		PostedBy:     e.PostedBy(),
	}
}

// ListEntriesResponse represents a page of entries.
type ListEntriesResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.JournalEntry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// FiscalYearResponse represents a fiscal year in API responses.
type FiscalYearResponse struct {
	ID             string    `json:"id"`
	YearNumber     int       `json:"year_number"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	Status         string    `json:"status"`
	ClosingEntryID *string   `json:"closing_entry_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// FiscalYearFromDomain converts a domain fiscal year to response.
func FiscalYearFromDomain(f *domain.FiscalYear) *FiscalYearResponse {
	return &FiscalYearResponse{
		ID:             f.ID,
		YearNumber:     f.YearNumber,
		StartDate:      f.StartDate.Format(DateLayout),
		EndDate:        f.EndDate.Format(DateLayout),
		Status:         string(f.Status),
		ClosingEntryID: f.ClosingEntryID,
		CreatedAt:      f.CreatedAt,
	}
}

// FiscalYearsFromDomain converts domain fiscal years to responses.
func FiscalYearsFromDomain(years []*domain.FiscalYear) []*FiscalYearResponse {
	result := make([]*FiscalYearResponse, len(years))
	for i, f := range years {
		result[i] = FiscalYearFromDomain(f)
	}
	return result
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID          string    `json:"id"`
	Number      string    `json:"number"`
	Label       string    `json:"label"`
	IsSummary   bool      `json:"is_summary"`
	IsAuxiliary bool      `json:"is_auxiliary"`
	ParentID    *string   `json:"parent_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:          a.ID,
		Number:      a.Number,
		Label:       a.Label,
		IsSummary:   a.IsSummary,
		IsAuxiliary: a.IsAuxiliary,
		ParentID:    a.ParentID,
		CreatedAt:   a.CreatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ThirdPartyResponse represents a counterparty in API responses.
type ThirdPartyResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

// ThirdPartyFromDomain converts a domain third party to response.
func ThirdPartyFromDomain(t *domain.ThirdParty) *ThirdPartyResponse {
	return &ThirdPartyResponse{
		ID:        t.ID,
		Code:      t.Code,
		Name:      t.Name,
		Type:      string(t.Type),
		CreatedAt: t.CreatedAt,
	}
}

// ThirdPartiesFromDomain converts domain third parties to responses.
func ThirdPartiesFromDomain(parties []*domain.ThirdParty) []*ThirdPartyResponse {
	result := make([]*ThirdPartyResponse, len(parties))
	for i, t := range parties {
		result[i] = ThirdPartyFromDomain(t)
	}
	return result
}

// LedgerReportResponse represents a consistency check result.
type LedgerReportResponse struct {
	FiscalYearID string       `json:"fiscal_year_id"`
	TotalDebit   domain.Money `json:"total_debit"`
	TotalCredit  domain.Money `json:"total_credit"`
	Balanced     bool         `json:"balanced"`
}

// LedgerReportFromUseCase converts a report to response.
func LedgerReportFromUseCase(r *usecase.LedgerReport) *LedgerReportResponse {
	return &LedgerReportResponse{
		FiscalYearID: r.FiscalYearID,
		TotalDebit:   r.TotalDebit,
		TotalCredit:  r.TotalCredit,
		Balanced:     r.Balanced,
	}
}
