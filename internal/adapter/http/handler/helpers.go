package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/iho/fiscledger/internal/adapter/http/dto"
	"github.com/iho/fiscledger/internal/domain"
	"github.com/iho/fiscledger/internal/usecase"
)

const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeDomainError maps err to a status and writes it.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	writeError(w, mapDomainError(err), message, err.Error())
}

// decodeJSON reads a bounded JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrFiscalYearNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrEntryPosted),
		errors.Is(err, domain.ErrAlreadyPosted),
		errors.Is(err, domain.ErrEntryVoided),
		errors.Is(err, domain.ErrCannotVoidPosted),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrDuplicateAccount):
		return http.StatusConflict

	case errors.Is(err, domain.ErrUnbalancedEntry),
		errors.Is(err, domain.ErrInvalidLine),
		errors.Is(err, domain.ErrLineNotFound),
		errors.Is(err, domain.ErrFiscalYearClosed),
		errors.Is(err, domain.ErrDateOutOfPeriod),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrThirdPartyNotFound),
		errors.Is(err, usecase.ErrInconsistentLedger):
		return http.StatusUnprocessableEntity

	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrMoneyOverflow),
		errors.Is(err, domain.ErrCurrencyMismatch),
		errors.Is(err, domain.ErrInvalidJournalCode),
		errors.Is(err, domain.ErrInvalidAccountNumber),
		errors.Is(err, domain.ErrInvalidDescription),
		errors.Is(err, domain.ErrInvalidLabel),
		errors.Is(err, domain.ErrInvalidIDFormat),
		errors.Is(err, domain.ErrInvalidThirdParty),
		errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, dto.ErrInvalidDate):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// rejectionReason is a low-cardinality metric label for err.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnbalancedEntry):
		return "unbalanced"
	case errors.Is(err, domain.ErrFiscalYearClosed):
		return "fiscal_year_closed"
	case errors.Is(err, domain.ErrDateOutOfPeriod):
		return "out_of_period"
	case errors.Is(err, domain.ErrEntryPosted), errors.Is(err, domain.ErrAlreadyPosted),
		errors.Is(err, domain.ErrCannotVoidPosted):
		return "posted"
	case errors.Is(err, domain.ErrEntryVoided):
		return "voided"
	case errors.Is(err, domain.ErrAccountNotFound), errors.Is(err, domain.ErrThirdPartyNotFound):
		return "unknown_reference"
	case errors.Is(err, domain.ErrEntryNotFound), errors.Is(err, domain.ErrFiscalYearNotFound):
		return "not_found"
	}

	if mapDomainError(err) == http.StatusInternalServerError {
		return "internal"
	}
	return "invalid"
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
