package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/fiscledger/internal/adapter/http/dto"
	"github.com/iho/fiscledger/internal/domain"
	"github.com/iho/fiscledger/internal/infrastructure/metrics"
	"github.com/iho/fiscledger/internal/usecase"
)

// FiscalYearService defines the behavior needed by FiscalYearHandler.
type FiscalYearService interface {
	CreateFiscalYear(ctx context.Context, input usecase.CreateFiscalYearInput) (*domain.FiscalYear, error)
	GetFiscalYear(ctx context.Context, id string) (*domain.FiscalYear, error)
	ListFiscalYears(ctx context.Context, limit, offset int) ([]*domain.FiscalYear, error)
	LockFiscalYear(ctx context.Context, id string) (*domain.FiscalYear, error)
	CloseFiscalYear(ctx context.Context, id, closingEntryID string) (*domain.FiscalYear, error)
}

// FiscalYearHandler handles fiscal year HTTP requests.
type FiscalYearHandler struct {
	fiscalYearUC FiscalYearService
	metrics      *metrics.Metrics
}

func NewFiscalYearHandler(fiscalYearUC FiscalYearService, m *metrics.Metrics) *FiscalYearHandler {
	return &FiscalYearHandler{fiscalYearUC: fiscalYearUC, metrics: m}
}

func (h *FiscalYearHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateFiscalYearRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeDomainError(w, "invalid fiscal year", err)
		return
	}

	fy, err := h.fiscalYearUC.CreateFiscalYear(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to create fiscal year", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.FiscalYearFromDomain(fy))
}

func (h *FiscalYearHandler) Get(w http.ResponseWriter, r *http.Request) {
	fy, err := h.fiscalYearUC.GetFiscalYear(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "failed to get fiscal year", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.FiscalYearFromDomain(fy))
}

func (h *FiscalYearHandler) List(w http.ResponseWriter, r *http.Request) {
	years, err := h.fiscalYearUC.ListFiscalYears(r.Context(), parseIntQuery(r, "limit", 20), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeDomainError(w, "failed to list fiscal years", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.FiscalYearsFromDomain(years))
}

// Lock freezes an open fiscal year.
func (h *FiscalYearHandler) Lock(w http.ResponseWriter, r *http.Request) {
	fy, err := h.fiscalYearUC.LockFiscalYear(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "failed to lock fiscal year", err)
		return
	}

	h.transitioned(fy)
	writeJSON(w, http.StatusOK, dto.FiscalYearFromDomain(fy))
}

// Close closes a fiscal year. The body is optional.
func (h *FiscalYearHandler) Close(w http.ResponseWriter, r *http.Request) {
	var req dto.CloseFiscalYearRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	fy, err := h.fiscalYearUC.CloseFiscalYear(r.Context(), chi.URLParam(r, "id"), req.ClosingEntryID)
	if err != nil {
		writeDomainError(w, "failed to close fiscal year", err)
		return
	}

	h.transitioned(fy)
	writeJSON(w, http.StatusOK, dto.FiscalYearFromDomain(fy))
}

func (h *FiscalYearHandler) transitioned(fy *domain.FiscalYear) {
	if h.metrics != nil {
		h.metrics.FiscalYearTransitions.WithLabelValues(string(fy.Status)).Inc()
	}
}
