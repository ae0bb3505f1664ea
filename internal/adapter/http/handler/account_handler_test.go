package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/fiscledger/internal/adapter/http/dto"
	"github.com/iho/fiscledger/internal/domain"
	"github.com/iho/fiscledger/internal/usecase"
)

type accountServiceStub struct {
	createAccountFn    func(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	createThirdPartyFn func(ctx context.Context, input usecase.CreateThirdPartyInput) (*domain.ThirdParty, error)
	accounts           []*domain.Account
}

func (s *accountServiceStub) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
	return s.createAccountFn(ctx, input)
}

func (s *accountServiceStub) ListAccounts(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	return s.accounts, nil
}

func (s *accountServiceStub) CreateThirdParty(ctx context.Context, input usecase.CreateThirdPartyInput) (*domain.ThirdParty, error) {
	return s.createThirdPartyFn(ctx, input)
}

func (s *accountServiceStub) ListThirdParties(ctx context.Context, limit, offset int) ([]*domain.ThirdParty, error) {
	return nil, nil
}

func TestAccountHandler_CreateAccount(t *testing.T) {
	var captured usecase.CreateAccountInput
	h := NewAccountHandler(&accountServiceStub{
		createAccountFn: func(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
			captured = input
			return &domain.Account{ID: "acc-1", Number: input.Number, Label: input.Label}, nil
		},
	})

	rec := httptest.NewRecorder()
	h.CreateAccount(rec, httptest.NewRequest(http.MethodPost, "/api/v1/accounts", strings.NewReader(`{"number":"512","label":"Bank"}`)))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "512", captured.Number)

	var resp dto.AccountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "acc-1", resp.ID)
}

func TestAccountHandler_CreateAccountDuplicate(t *testing.T) {
	h := NewAccountHandler(&accountServiceStub{
		createAccountFn: func(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
			return nil, domain.ErrDuplicateAccount
		},
	})

	rec := httptest.NewRecorder()
	h.CreateAccount(rec, httptest.NewRequest(http.MethodPost, "/api/v1/accounts", strings.NewReader(`{"number":"512","label":"Bank"}`)))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAccountHandler_CreateThirdPartyInvalidType(t *testing.T) {
	h := NewAccountHandler(&accountServiceStub{
		createThirdPartyFn: func(ctx context.Context, input usecase.CreateThirdPartyInput) (*domain.ThirdParty, error) {
			assert.Equal(t, domain.ThirdPartyType("partner"), input.Type)
			return nil, domain.ErrInvalidThirdParty
		},
	})

	rec := httptest.NewRecorder()
	h.CreateThirdParty(rec, httptest.NewRequest(http.MethodPost, "/api/v1/third-parties", strings.NewReader(`{"code":"P1","name":"X","type":"Partner"}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccountHandler_ListAccounts(t *testing.T) {
	h := NewAccountHandler(&accountServiceStub{
		accounts: []*domain.Account{{ID: "a1", Number: "401"}, {ID: "a2", Number: "512"}},
	})

	rec := httptest.NewRecorder()
	h.ListAccounts(rec, httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.AccountResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}
