package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/fiscledger/internal/domain"
	"github.com/iho/fiscledger/internal/infrastructure/postgres/generated"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	queries *generated.Queries
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return newAccountRepository(pool)
}

func newAccountRepository(db generated.DBTX) *AccountRepository {
	return &AccountRepository{queries: generated.New(db)}
}

// Create creates a new account.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	err := r.queries.CreateAccount(ctx, generated.CreateAccountParams{
		ID:          account.ID,
		Number:      account.Number,
		Label:       account.Label,
		IsSummary:   account.IsSummary,
		IsAuxiliary: account.IsAuxiliary,
		ParentID:    stringPtrToPgText(account.ParentID),
		CreatedAt:   timeToPgTimestamptz(account.CreatedAt),
	})
	if isUniqueViolation(err) {
		return domain.ErrDuplicateAccount
	}
	return err
}

// List lists accounts ordered by number.
func (r *AccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	rows, err := r.queries.ListAccounts(ctx, generated.ListAccountsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	accounts := make([]*domain.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, &domain.Account{
			ID:          row.ID,
			Number:      row.Number,
			Label:       row.Label,
			IsSummary:   row.IsSummary,
			IsAuxiliary: row.IsAuxiliary,
			ParentID:    pgTextToPtr(row.ParentID),
			CreatedAt:   row.CreatedAt.Time,
		})
	}

	return accounts, nil
}

// MissingIDs returns the ids that are unknown or belong to summary accounts.
func (r *AccountRepository) MissingIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := r.queries.GetPostableAccountIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return missingFrom(ids, found), nil
}

// ThirdPartyRepository implements usecase.ThirdPartyRepository.
type ThirdPartyRepository struct {
	queries *generated.Queries
}

// NewThirdPartyRepository creates a new ThirdPartyRepository.
func NewThirdPartyRepository(pool *pgxpool.Pool) *ThirdPartyRepository {
	return &ThirdPartyRepository{queries: generated.New(pool)}
}

// Create registers a counterparty.
func (r *ThirdPartyRepository) Create(ctx context.Context, tp *domain.ThirdParty) error {
	err := r.queries.CreateThirdParty(ctx, generated.CreateThirdPartyParams{
		ID:        tp.ID,
		Code:      tp.Code,
		Name:      tp.Name,
		Type:      string(tp.Type),
		CreatedAt: timeToPgTimestamptz(tp.CreatedAt),
	})
	if isUniqueViolation(err) {
		return domain.ErrInvalidThirdParty
	}
	return err
}

// List lists counterparties ordered by code.
func (r *ThirdPartyRepository) List(ctx context.Context, limit, offset int) ([]*domain.ThirdParty, error) {
	rows, err := r.queries.ListThirdParties(ctx, generated.ListThirdPartiesParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	parties := make([]*domain.ThirdParty, 0, len(rows))
	for _, row := range rows {
		parties = append(parties, &domain.ThirdParty{
			ID:        row.ID,
			Code:      row.Code,
			Name:      row.Name,
			Type:      domain.ThirdPartyType(row.Type),
			CreatedAt: row.CreatedAt.Time,
		})
	}

	return parties, nil
}

// MissingIDs returns the ids with no registered counterparty.
func (r *ThirdPartyRepository) MissingIDs(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	found, err := r.queries.GetThirdPartyIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return missingFrom(ids, found), nil
}
