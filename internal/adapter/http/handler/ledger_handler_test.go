package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/fiscledger/internal/adapter/http/dto"
	"github.com/iho/fiscledger/internal/domain"
	"github.com/iho/fiscledger/internal/usecase"
)

type ledgerServiceFunc func(ctx context.Context, fiscalYearID string) (*usecase.LedgerReport, error)

func (f ledgerServiceFunc) CheckConsistency(ctx context.Context, fiscalYearID string) (*usecase.LedgerReport, error) {
	return f(ctx, fiscalYearID)
}

func TestLedgerHandler_Balanced(t *testing.T) {
	h := NewLedgerHandler(ledgerServiceFunc(func(ctx context.Context, id string) (*usecase.LedgerReport, error) {
		return &usecase.LedgerReport{
			FiscalYearID: id,
			TotalDebit:   domain.MoneyFromMinorUnits(5000),
			TotalCredit:  domain.MoneyFromMinorUnits(5000),
			Balanced:     true,
		}, nil
	}))

	rec := httptest.NewRecorder()
	h.CheckConsistency(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "fy-2024"))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "5.000", resp["total_debit"])
	assert.Equal(t, true, resp["balanced"])
}

func TestLedgerHandler_UnbalancedReturnsReport(t *testing.T) {
	h := NewLedgerHandler(ledgerServiceFunc(func(ctx context.Context, id string) (*usecase.LedgerReport, error) {
		report := &usecase.LedgerReport{
			FiscalYearID: id,
			TotalDebit:   domain.MoneyFromMinorUnits(5000),
			TotalCredit:  domain.MoneyFromMinorUnits(4000),
		}
		return report, fmt.Errorf("%w: fiscal year %s", usecase.ErrInconsistentLedger, id)
	}))

	rec := httptest.NewRecorder()
	h.CheckConsistency(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "fy-2024"))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp dto.LedgerReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Balanced)
	assert.Equal(t, int64(4000), resp.TotalCredit.MinorUnits())
}

func TestLedgerHandler_StoreError(t *testing.T) {
	h := NewLedgerHandler(ledgerServiceFunc(func(ctx context.Context, id string) (*usecase.LedgerReport, error) {
		return nil, errors.New("timeout")
	}))

	rec := httptest.NewRecorder()
	h.CheckConsistency(rec, withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "fy-2024"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
