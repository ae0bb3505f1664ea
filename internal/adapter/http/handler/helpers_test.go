package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/iho/fiscledger/internal/adapter/http/dto"
	"github.com/iho/fiscledger/internal/domain"
	"github.com/iho/fiscledger/internal/usecase"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrEntryNotFound, http.StatusNotFound},
		{domain.ErrFiscalYearNotFound, http.StatusNotFound},
		{domain.ErrAlreadyPosted, http.StatusConflict},
		{domain.ErrEntryPosted, http.StatusConflict},
		{domain.ErrCannotVoidPosted, http.StatusConflict},
		{domain.ErrEntryVoided, http.StatusConflict},
		{domain.ErrDuplicateAccount, http.StatusConflict},
		{domain.ErrUnbalancedEntry, http.StatusUnprocessableEntity},
		{fmt.Errorf("line 2: %w", domain.ErrInvalidLine), http.StatusUnprocessableEntity},
		{domain.ErrFiscalYearClosed, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: 2025-01-01 not in 2024-01-01..2024-12-31", domain.ErrDateOutOfPeriod), http.StatusUnprocessableEntity},
		{fmt.Errorf("debit total at line 2: %w", domain.ErrMoneyOverflow), http.StatusBadRequest},
		{domain.ErrAccountNotFound, http.StatusUnprocessableEntity},
		{usecase.ErrInconsistentLedger, http.StatusUnprocessableEntity},
		{domain.ErrInvalidAmount, http.StatusBadRequest},
		{domain.ErrInvalidJournalCode, http.StatusBadRequest},
		{dto.ErrInvalidDate, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := mapDomainError(tt.err); got != tt.want {
			t.Errorf("mapDomainError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestRejectionReason(t *testing.T) {
	tests := map[error]string{
		domain.ErrUnbalancedEntry:    "unbalanced",
		domain.ErrFiscalYearClosed:   "fiscal_year_closed",
		domain.ErrDateOutOfPeriod:    "out_of_period",
		domain.ErrAlreadyPosted:      "posted",
		domain.ErrEntryVoided:        "voided",
		domain.ErrThirdPartyNotFound: "unknown_reference",
		domain.ErrEntryNotFound:      "not_found",
		domain.ErrInvalidAmount:      "invalid",
		errors.New("db down"):        "internal",
	}

	for err, want := range tests {
		if got := rejectionReason(err); got != want {
			t.Errorf("rejectionReason(%v) = %q, want %q", err, got, want)
		}
	}
}

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?limit=50&offset=abc", nil)

	if got := parseIntQuery(req, "limit", 20); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	if got := parseIntQuery(req, "offset", 0); got != 0 {
		t.Fatalf("expected default for invalid value, got %d", got)
	}
	if got := parseIntQuery(req, "missing", 7); got != 7 {
		t.Fatalf("expected default for missing value, got %d", got)
	}
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
