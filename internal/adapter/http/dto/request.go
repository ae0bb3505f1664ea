package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/iho/fiscledger/internal/domain"
	"github.com/iho/fiscledger/internal/usecase"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// LineRequest is one journal line. Amounts are major-unit decimal strings;
// an omitted side is zero.
type LineRequest struct {
	AccountID    string  `json:"account_id"`
	ThirdPartyID *string `json:"third_party_id,omitempty"`
	Label        string  `json:"label"`
	Debit        string  `json:"debit,omitempty"`
	Credit       string  `json:"credit,omitempty"`
}

// CreateEntryRequest represents a request to record a journal entry.
type CreateEntryRequest struct {
	FiscalYearID string        `json:"fiscal_year_id"`
	JournalCode  string        `json:"journal_code"`
	EntryDate    string        `json:"entry_date"`
	Description  string        `json:"description"`
	Reference    string        `json:"reference,omitempty"`
	Lines        []LineRequest `json:"lines"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateEntryRequest) ToUseCaseInput() (usecase.CreateEntryInput, error) {
	date, err := parseDate("entry_date", r.EntryDate)
	if err != nil {
		return usecase.CreateEntryInput{}, err
	}

	lines, err := linesToInput(r.Lines)
	if err != nil {
		return usecase.CreateEntryInput{}, err
	}

	return usecase.CreateEntryInput{
		EntryDate:    date,
		FiscalYearID: r.FiscalYearID,
		JournalCode:  strings.ToUpper(strings.TrimSpace(r.JournalCode)),
		Description:  r.Description,
		Reference:    r.Reference,
		Lines:        lines,
	}, nil
}

// UpdateEntryRequest replaces the header and lines of a draft entry.
type UpdateEntryRequest struct {
	EntryDate   string        `json:"entry_date"`
	Description string        `json:"description"`
	Reference   string        `json:"reference,omitempty"`
	Lines       []LineRequest `json:"lines"`
}

// ToUseCaseInput converts to use case input for the entry id.
func (r *UpdateEntryRequest) ToUseCaseInput(id string) (usecase.UpdateEntryInput, error) {
	date, err := parseDate("entry_date", r.EntryDate)
	if err != nil {
		return usecase.UpdateEntryInput{}, err
	}

	lines, err := linesToInput(r.Lines)
	if err != nil {
		return usecase.UpdateEntryInput{}, err
	}

	return usecase.UpdateEntryInput{
		EntryDate:   date,
		ID:          id,
		Description: r.Description,
		Reference:   r.Reference,
		Lines:       lines,
	}, nil
}

func linesToInput(lines []LineRequest) ([]usecase.LineInput, error) {
	out := make([]usecase.LineInput, len(lines))
	for i, l := range lines {
		debit, err := parseAmount(l.Debit)
		if err != nil {
			return nil, fmt.Errorf("line %d debit: %w", i+1, err)
		}

		credit, err := parseAmount(l.Credit)
		if err != nil {
			return nil, fmt.Errorf("line %d credit: %w", i+1, err)
		}

		out[i] = usecase.LineInput{
			ThirdPartyID: l.ThirdPartyID,
			AccountID:    strings.TrimSpace(l.AccountID),
			Label:        l.Label,
			Debit:        debit,
			Credit:       credit,
		}
	}
	return out, nil
}

func parseAmount(s string) (domain.Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.MoneyFromMinorUnits(0), nil
	}
	return domain.ParseMoney(s)
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", ErrInvalidDate, field)
	}
	return t, nil
}

// CreateFiscalYearRequest represents a request to open a fiscal year.
type CreateFiscalYearRequest struct {
	YearNumber int    `json:"year_number"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateFiscalYearRequest) ToUseCaseInput() (usecase.CreateFiscalYearInput, error) {
	start, err := parseDate("start_date", r.StartDate)
	if err != nil {
		return usecase.CreateFiscalYearInput{}, err
	}

	end, err := parseDate("end_date", r.EndDate)
	if err != nil {
		return usecase.CreateFiscalYearInput{}, err
	}

	return usecase.CreateFiscalYearInput{
		StartDate:  start,
		EndDate:    end,
		YearNumber: r.YearNumber,
	}, nil
}

// CloseFiscalYearRequest optionally names the closing entry.
type CloseFiscalYearRequest struct {
	ClosingEntryID string `json:"closing_entry_id,omitempty"`
}

// CreateAccountRequest represents a request to add an account to the chart.
type CreateAccountRequest struct {
	ParentID    *string `json:"parent_id,omitempty"`
	Number      string  `json:"number"`
	Label       string  `json:"label"`
	IsSummary   bool    `json:"is_summary"`
	IsAuxiliary bool    `json:"is_auxiliary"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		ParentID:    r.ParentID,
		Number:      r.Number,
		Label:       r.Label,
		IsSummary:   r.IsSummary,
		IsAuxiliary: r.IsAuxiliary,
	}
}

// CreateThirdPartyRequest represents a request to register a counterparty.
type CreateThirdPartyRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateThirdPartyRequest) ToUseCaseInput() usecase.CreateThirdPartyInput {
	return usecase.CreateThirdPartyInput{
		Code: r.Code,
		Name: r.Name,
		Type: domain.ThirdPartyType(strings.ToLower(strings.TrimSpace(r.Type))),
	}
}
