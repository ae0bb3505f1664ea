package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/fiscledger/internal/adapter/http/dto"
	"github.com/iho/fiscledger/internal/usecase"
)

// LedgerService defines the behavior needed by LedgerHandler.
type LedgerService interface {
	CheckConsistency(ctx context.Context, fiscalYearID string) (*usecase.LedgerReport, error)
}

// LedgerHandler serves ledger-wide checks.
type LedgerHandler struct {
	ledgerUC LedgerService
}

func NewLedgerHandler(ledgerUC LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerUC: ledgerUC}
}

// CheckConsistency reports whether posted debits equal posted credits.
// An unbalanced ledger answers 422 with the report as body.
func (h *LedgerHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	report, err := h.ledgerUC.CheckConsistency(r.Context(), chi.URLParam(r, "id"))
	if err != nil && !errors.Is(err, usecase.ErrInconsistentLedger) {
		writeDomainError(w, "failed to check ledger", err)
		return
	}

	status := http.StatusOK
	if err != nil {
		status = http.StatusUnprocessableEntity
	}

	writeJSON(w, status, dto.LedgerReportFromUseCase(report))
}
