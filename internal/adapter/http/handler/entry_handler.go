package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/fiscledger/internal/adapter/http/dto"
	"github.com/iho/fiscledger/internal/domain"
	"github.com/iho/fiscledger/internal/infrastructure/metrics"
	"github.com/iho/fiscledger/internal/usecase"
)

// EntryService defines the behavior needed by EntryHandler.
type EntryService interface {
	CreateEntry(ctx context.Context, input usecase.CreateEntryInput) (*domain.JournalEntry, error)
	UpdateEntry(ctx context.Context, input usecase.UpdateEntryInput) (*domain.JournalEntry, error)
	PostEntry(ctx context.Context, id string) (*domain.JournalEntry, error)
	VoidEntry(ctx context.Context, id string) (*domain.JournalEntry, error)
	DeleteEntry(ctx context.Context, id string) error
	GetEntry(ctx context.Context, id string) (*domain.JournalEntry, error)
	ListEntries(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.JournalEntry, error)
}

// EntryHandler handles journal entry HTTP requests.
type EntryHandler struct {
	entryUC EntryService
	metrics *metrics.Metrics
}

// NewEntryHandler creates a new EntryHandler. m may be nil.
func NewEntryHandler(entryUC EntryService, m *metrics.Metrics) *EntryHandler {
	return &EntryHandler{entryUC: entryUC, metrics: m}
}

// Create records a new draft entry.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		h.reject("create", err)
		writeDomainError(w, "invalid entry", err)
		return
	}

	entry, err := h.entryUC.CreateEntry(r.Context(), input)
	if err != nil {
		h.reject("create", err)
		writeDomainError(w, "failed to create entry", err)
		return
	}

	if h.metrics != nil {
		h.metrics.EntriesCreated.Inc()
		h.metrics.EntryLines.Observe(float64(entry.LineCount()))
	}

	writeJSON(w, http.StatusCreated, dto.EntryFromDomain(entry))
}

// Get retrieves an entry by ID.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.entryUC.GetEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, "failed to get entry", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// List lists entries filtered by fiscal year, journal and status.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	status := domain.EntryStatus(q.Get("status"))
	if status != "" && !status.IsValid() {
		writeError(w, http.StatusBadRequest, "invalid status filter", string(status))
		return
	}

	input := usecase.ListEntriesInput{
		FiscalYearID: q.Get("fiscal_year_id"),
		JournalCode:  q.Get("journal_code"),
		Status:       status,
		Limit:        parseIntQuery(r, "limit", 20),
		Offset:       parseIntQuery(r, "offset", 0),
	}

	entries, err := h.entryUC.ListEntries(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to list entries", err)
		return
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	writeJSON(w, http.StatusOK, dto.ListEntriesResponse{
		Entries: dto.EntriesFromDomain(entries),
		Limit:   limit,
		Offset:  offset,
	})
}

// Update replaces the header and lines of a draft entry.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateEntryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput(chi.URLParam(r, "id"))
	if err != nil {
		h.reject("update", err)
		writeDomainError(w, "invalid entry", err)
		return
	}

	entry, err := h.entryUC.UpdateEntry(r.Context(), input)
	if err != nil {
		h.reject("update", err)
		writeDomainError(w, "failed to update entry", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Post finalises a balanced draft.
func (h *EntryHandler) Post(w http.ResponseWriter, r *http.Request) {
	entry, err := h.entryUC.PostEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.reject("post", err)
		writeDomainError(w, "failed to post entry", err)
		return
	}

	if h.metrics != nil {
		h.metrics.EntriesPosted.Inc()
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Void cancels a draft.
func (h *EntryHandler) Void(w http.ResponseWriter, r *http.Request) {
	entry, err := h.entryUC.VoidEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.reject("void", err)
		writeDomainError(w, "failed to void entry", err)
		return
	}

	if h.metrics != nil {
		h.metrics.EntriesVoided.Inc()
	}

	writeJSON(w, http.StatusOK, dto.EntryFromDomain(entry))
}

// Delete removes an unposted entry.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.entryUC.DeleteEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.reject("delete", err)
		writeDomainError(w, "failed to delete entry", err)
		return
	}

	if h.metrics != nil {
		h.metrics.EntriesDeleted.Inc()
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EntryHandler) reject(op string, err error) {
	if h.metrics == nil {
		return
	}
	h.metrics.EntryRejections.WithLabelValues(op, rejectionReason(err)).Inc()
}
