package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/iho/fiscledger/internal/domain"
)

// AccountUseCase maintains the chart of accounts and the third-party register.
type AccountUseCase struct {
	accountRepo    AccountRepository
	thirdPartyRepo ThirdPartyRepository
	idGen          IDGenerator
	clock          Clock
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, thirdPartyRepo ThirdPartyRepository, idGen IDGenerator, clock Clock) *AccountUseCase {
	return &AccountUseCase{
		accountRepo:    accountRepo,
		thirdPartyRepo: thirdPartyRepo,
		idGen:          idGen,
		clock:          clock,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	ParentID    *string
	Number      string
	Label       string
	IsSummary   bool
	IsAuxiliary bool
}

// CreateAccount adds an account to the chart.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	number := strings.TrimSpace(input.Number)
	if err := domain.ValidateAccountNumber(number); err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Label) == "" || len(input.Label) > domain.MaxLabelLength {
		return nil, fmt.Errorf("%w: label must be 1-%d characters", domain.ErrInvalidLabel, domain.MaxLabelLength)
	}

	account := &domain.Account{
		ID:          uc.idGen.Generate(),
		Number:      number,
		Label:       input.Label,
		IsSummary:   input.IsSummary,
		IsAuxiliary: input.IsAuxiliary,
		ParentID:    input.ParentID,
		CreatedAt:   uc.clock.Now(),
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// ListAccounts lists accounts ordered by number.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.accountRepo.List(ctx, limit, offset)
}

// CreateThirdPartyInput represents input for registering a counterparty.
type CreateThirdPartyInput struct {
	Code string
	Name string
	Type domain.ThirdPartyType
}

// CreateThirdParty registers a counterparty.
func (uc *AccountUseCase) CreateThirdParty(ctx context.Context, input CreateThirdPartyInput) (*domain.ThirdParty, error) {
	if !input.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown type %q", domain.ErrInvalidThirdParty, input.Type)
	}

	if strings.TrimSpace(input.Code) == "" || strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: code and name are required", domain.ErrInvalidThirdParty)
	}

	tp := &domain.ThirdParty{
		ID:        uc.idGen.Generate(),
		Code:      strings.TrimSpace(input.Code),
		Name:      input.Name,
		Type:      input.Type,
		CreatedAt: uc.clock.Now(),
	}

	if err := uc.thirdPartyRepo.Create(ctx, tp); err != nil {
		return nil, err
	}

	return tp, nil
}

// ListThirdParties lists counterparties ordered by code.
func (uc *AccountUseCase) ListThirdParties(ctx context.Context, limit, offset int) ([]*domain.ThirdParty, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.thirdPartyRepo.List(ctx, limit, offset)
}
