package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/fiscledger/internal/adapter/http/dto"
	"github.com/iho/fiscledger/internal/domain"
	"github.com/iho/fiscledger/internal/infrastructure/metrics"
	"github.com/iho/fiscledger/internal/usecase"
)

type entryServiceStub struct {
	createFn func(ctx context.Context, input usecase.CreateEntryInput) (*domain.JournalEntry, error)
	updateFn func(ctx context.Context, input usecase.UpdateEntryInput) (*domain.JournalEntry, error)
	postFn   func(ctx context.Context, id string) (*domain.JournalEntry, error)
	voidFn   func(ctx context.Context, id string) (*domain.JournalEntry, error)
	deleteFn func(ctx context.Context, id string) error
	getFn    func(ctx context.Context, id string) (*domain.JournalEntry, error)
	listFn   func(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.JournalEntry, error)
}

func (s *entryServiceStub) CreateEntry(ctx context.Context, input usecase.CreateEntryInput) (*domain.JournalEntry, error) {
	return s.createFn(ctx, input)
}

func (s *entryServiceStub) UpdateEntry(ctx context.Context, input usecase.UpdateEntryInput) (*domain.JournalEntry, error) {
	return s.updateFn(ctx, input)
}

func (s *entryServiceStub) PostEntry(ctx context.Context, id string) (*domain.JournalEntry, error) {
	return s.postFn(ctx, id)
}

func (s *entryServiceStub) VoidEntry(ctx context.Context, id string) (*domain.JournalEntry, error) {
	return s.voidFn(ctx, id)
}

func (s *entryServiceStub) DeleteEntry(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *entryServiceStub) GetEntry(ctx context.Context, id string) (*domain.JournalEntry, error) {
	return s.getFn(ctx, id)
}

func (s *entryServiceStub) ListEntries(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.JournalEntry, error) {
	return s.listFn(ctx, input)
}

func balancedEntry(t *testing.T, id string) *domain.JournalEntry {
	t.Helper()

	e := domain.NewJournalEntry(domain.NewJournalEntryParams{
		ID:           id,
		FiscalYearID: "fy-2024",
		JournalCode:  "BQ",
		EntryNumber:  1,
		EntryDate:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Description:  "payment",
		Audit:        domain.Audit{CreatedBy: "alice", CreatedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)},
	})
	d, err := domain.NewJournalLine("l-1", "512", "bank", domain.MoneyFromMinorUnits(25000), domain.MoneyFromMinorUnits(0), nil)
	require.NoError(t, err)
	c, err := domain.NewJournalLine("l-2", "411", "client", domain.MoneyFromMinorUnits(0), domain.MoneyFromMinorUnits(25000), nil)
	require.NoError(t, err)
	require.NoError(t, e.AddLine(d))
	require.NoError(t, e.AddLine(c))

	return e
}

const createBody = `{
	"fiscal_year_id": "fy-2024",
	"journal_code": "BQ",
	"entry_date": "2024-03-15",
	"description": "payment",
	"lines": [
		{"account_id": "512", "label": "bank", "debit": "25"},
		{"account_id": "411", "label": "client", "credit": "25.000"}
	]
}`

func TestEntryHandler_Create_Success(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	var captured usecase.CreateEntryInput
	h := NewEntryHandler(&entryServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateEntryInput) (*domain.JournalEntry, error) {
			captured = input
			return balancedEntry(t, "entry-1"), nil
		},
	}, m)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/entries", strings.NewReader(createBody))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "BQ", captured.JournalCode)
	require.Len(t, captured.Lines, 2)
	assert.Equal(t, int64(25000), captured.Lines[1].Credit.MinorUnits())

	var resp dto.EntryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "entry-1", resp.ID)
	assert.Equal(t, "draft", resp.Status)
	assert.Equal(t, int64(25000), resp.TotalDebit.MinorUnits())

	assert.Equal(t, float64(1), testutil.ToFloat64(m.EntriesCreated))
}

func TestEntryHandler_Create_Unbalanced(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	h := NewEntryHandler(&entryServiceStub{
		createFn: func(ctx context.Context, input usecase.CreateEntryInput) (*domain.JournalEntry, error) {
			return nil, domain.ErrUnbalancedEntry
		},
	}, m)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/entries", strings.NewReader(createBody))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.EntryRejections.WithLabelValues("create", "unbalanced")))
}

func TestEntryHandler_Create_InvalidBody(t *testing.T) {
	h := NewEntryHandler(&entryServiceStub{}, nil)

	for name, body := range map[string]string{
		"malformed":     `{"lines": [`,
		"unknown field": `{"amount": 5}`,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/entries", strings.NewReader(body))
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestEntryHandler_Create_InvalidAmount(t *testing.T) {
	h := NewEntryHandler(&entryServiceStub{}, nil)

	body := strings.Replace(createBody, `"25.000"`, `"25,000"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/entries", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEntryHandler_Get_NotFound(t *testing.T) {
	h := NewEntryHandler(&entryServiceStub{
		getFn: func(ctx context.Context, id string) (*domain.JournalEntry, error) {
			assert.Equal(t, "missing", id)
			return nil, domain.ErrEntryNotFound
		},
	}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/v1/entries/missing", nil), "id", "missing")
	rec := httptest.NewRecorder()

	h.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEntryHandler_List_PassesFilters(t *testing.T) {
	var captured usecase.ListEntriesInput
	h := NewEntryHandler(&entryServiceStub{
		listFn: func(ctx context.Context, input usecase.ListEntriesInput) ([]*domain.JournalEntry, error) {
			captured = input
			return []*domain.JournalEntry{balancedEntry(t, "entry-1")}, nil
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/entries?fiscal_year_id=fy-2024&journal_code=BQ&status=posted&limit=500", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fy-2024", captured.FiscalYearID)
	assert.Equal(t, "BQ", captured.JournalCode)
	assert.Equal(t, domain.EntryStatusPosted, captured.Status)

	var resp dto.ListEntriesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Entries, 1)
	assert.Equal(t, 100, resp.Limit)
}

func TestEntryHandler_List_RejectsUnknownStatus(t *testing.T) {
	h := NewEntryHandler(&entryServiceStub{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/entries?status=archived", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEntryHandler_Post(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"posted", nil, http.StatusOK},
		{"already posted", domain.ErrAlreadyPosted, http.StatusConflict},
		{"unbalanced", domain.ErrUnbalancedEntry, http.StatusUnprocessableEntity},
		{"closed year", domain.ErrFiscalYearClosed, http.StatusUnprocessableEntity},
		{"store failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewEntryHandler(&entryServiceStub{
				postFn: func(ctx context.Context, id string) (*domain.JournalEntry, error) {
					if tt.err != nil {
						return nil, tt.err
					}
					e := balancedEntry(t, id)
					require.NoError(t, e.Post("bob", time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)))
					return e, nil
				},
			}, metrics.New(prometheus.NewRegistry()))

			req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/v1/entries/entry-1/post", nil), "id", "entry-1")
			rec := httptest.NewRecorder()

			h.Post(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.err == nil {
				var resp dto.EntryResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.Equal(t, "posted", resp.Status)
				require.NotNil(t, resp.PostedBy)
				assert.Equal(t, "bob", *resp.PostedBy)
			}
		})
	}
}

func TestEntryHandler_Void_PostedConflict(t *testing.T) {
	h := NewEntryHandler(&entryServiceStub{
		voidFn: func(ctx context.Context, id string) (*domain.JournalEntry, error) {
			return nil, domain.ErrCannotVoidPosted
		},
	}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodPost, "/api/v1/entries/entry-1/void", nil), "id", "entry-1")
	rec := httptest.NewRecorder()

	h.Void(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestEntryHandler_Update(t *testing.T) {
	var captured usecase.UpdateEntryInput
	h := NewEntryHandler(&entryServiceStub{
		updateFn: func(ctx context.Context, input usecase.UpdateEntryInput) (*domain.JournalEntry, error) {
			captured = input
			return balancedEntry(t, input.ID), nil
		},
	}, nil)

	body := `{"entry_date":"2024-03-20","description":"amended","lines":[{"account_id":"512","debit":"1"},{"account_id":"411","credit":"1"}]}`
	req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/v1/entries/entry-1", strings.NewReader(body)), "id", "entry-1")
	rec := httptest.NewRecorder()

	h.Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "entry-1", captured.ID)
	assert.Equal(t, "amended", captured.Description)
}

func TestEntryHandler_Delete(t *testing.T) {
	h := NewEntryHandler(&entryServiceStub{
		deleteFn: func(ctx context.Context, id string) error {
			if id == "posted" {
				return domain.ErrEntryPosted
			}
			return nil
		},
	}, nil)

	rec := httptest.NewRecorder()
	h.Delete(rec, withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/entries/draft", nil), "id", "draft"))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	h.Delete(rec, withURLParam(httptest.NewRequest(http.MethodDelete, "/api/v1/entries/posted", nil), "id", "posted"))
	assert.Equal(t, http.StatusConflict, rec.Code)
}
