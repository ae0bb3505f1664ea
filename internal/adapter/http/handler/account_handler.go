package handler

import (
	"context"
	"net/http"

	"github.com/iho/fiscledger/internal/adapter/http/dto"
	"github.com/iho/fiscledger/internal/domain"
	"github.com/iho/fiscledger/internal/usecase"
)

// AccountService defines the behavior needed by AccountHandler.
type AccountService interface {
	CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]*domain.Account, error)
	CreateThirdParty(ctx context.Context, input usecase.CreateThirdPartyInput) (*domain.ThirdParty, error)
	ListThirdParties(ctx context.Context, limit, offset int) ([]*domain.ThirdParty, error)
}

// AccountHandler serves the chart of accounts and the third-party register.
type AccountHandler struct {
	accountUC AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountUC AccountService) *AccountHandler {
	return &AccountHandler{accountUC: accountUC}
}

// CreateAccount adds an account to the chart.
func (h *AccountHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	account, err := h.accountUC.CreateAccount(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to create account", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.AccountFromDomain(account))
}

// ListAccounts lists accounts ordered by number.
func (h *AccountHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountUC.ListAccounts(r.Context(), parseIntQuery(r, "limit", 20), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeDomainError(w, "failed to list accounts", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(accounts))
}

// CreateThirdParty registers a counterparty.
func (h *AccountHandler) CreateThirdParty(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateThirdPartyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	tp, err := h.accountUC.CreateThirdParty(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to create third party", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ThirdPartyFromDomain(tp))
}

// ListThirdParties lists counterparties ordered by code.
func (h *AccountHandler) ListThirdParties(w http.ResponseWriter, r *http.Request) {
	parties, err := h.accountUC.ListThirdParties(r.Context(), parseIntQuery(r, "limit", 20), parseIntQuery(r, "offset", 0))
	if err != nil {
		writeDomainError(w, "failed to list third parties", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ThirdPartiesFromDomain(parties))
}
