package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/iho/fiscledger/internal/domain"
)

// JournalEntryUseCase handles journal entry business logic.
type JournalEntryUseCase struct {
	txManager      TransactionManager
	entryRepo      JournalEntryRepository
	fiscalYearRepo FiscalYearRepository
	accountRepo    AccountRepository
	thirdPartyRepo ThirdPartyRepository
	sequence       EntrySequence
	outboxRepo     OutboxRepository
	idGen          IDGenerator
	clock          Clock
	retrier        Retrier
}

// NewJournalEntryUseCase creates a new JournalEntryUseCase.
func NewJournalEntryUseCase(
	txManager TransactionManager,
	entryRepo JournalEntryRepository,
	fiscalYearRepo FiscalYearRepository,
	accountRepo AccountRepository,
	thirdPartyRepo ThirdPartyRepository,
	sequence EntrySequence,
	outboxRepo OutboxRepository,
	idGen IDGenerator,
	clock Clock,
	retrier Retrier,
) *JournalEntryUseCase {
	return &JournalEntryUseCase{
		txManager:      txManager,
		entryRepo:      entryRepo,
		fiscalYearRepo: fiscalYearRepo,
		accountRepo:    accountRepo,
		thirdPartyRepo: thirdPartyRepo,
		sequence:       sequence,
		outboxRepo:     outboxRepo,
		idGen:          idGen,
		clock:          clock,
		retrier:        retrier,
	}
}

// LineInput describes one line of an entry to create or update.
type LineInput struct {
	ThirdPartyID *string
	AccountID    string
	Label        string
	Debit        domain.Money
	Credit       domain.Money
}

// CreateEntryInput represents input for creating a journal entry.
type CreateEntryInput struct {
	EntryDate    time.Time
	FiscalYearID string
	JournalCode  string
	Description  string
	Reference    string
	Lines        []LineInput
}

// UpdateEntryInput represents input for amending a draft entry.
type UpdateEntryInput struct {
	EntryDate   time.Time
	ID          string
	Description string
	Reference   string
	Lines       []LineInput
}

// ListEntriesInput represents input for listing entries.
type ListEntriesInput struct {
	FiscalYearID string
	JournalCode  string
	Status       domain.EntryStatus
	Limit        int
	Offset       int
}

// CreateEntry records a balanced draft entry under the next entry number of its journal.
func (uc *JournalEntryUseCase) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.JournalEntry, error) {
	// 0. Validate inputs before starting transaction
	if err := domain.ValidateJournalCode(input.JournalCode); err != nil {
		return nil, err
	}

	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}

	if err := validateLineInputs(input.Lines); err != nil {
		return nil, err
	}

	// 1. Fiscal year must exist, accept entries and cover the entry date
	if err := uc.checkFiscalYear(ctx, input.FiscalYearID, input.EntryDate); err != nil {
		return nil, err
	}

	// 2. Referenced accounts and third parties must exist
	if err := uc.checkReferences(ctx, input.Lines); err != nil {
		return nil, err
	}

	actor := UserIDFromContext(ctx)

	var entry *domain.JournalEntry

	err := uc.retrier.Retry(ctx, func() error {
		var err error
		entry, err = uc.createInTx(ctx, input, actor)
		return err
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (uc *JournalEntryUseCase) createInTx(ctx context.Context, input CreateEntryInput, actor string) (*domain.JournalEntry, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	number, err := uc.sequence.Next(ctx, tx, input.FiscalYearID, input.JournalCode)
	if err != nil {
		return nil, err
	}

	entry := domain.NewJournalEntry(domain.NewJournalEntryParams{
		ID:           uc.idGen.Generate(),
		FiscalYearID: input.FiscalYearID,
		JournalCode:  input.JournalCode,
		EntryNumber:  number,
		EntryDate:    input.EntryDate,
		Description:  input.Description,
		Reference:    input.Reference,
		Audit: domain.Audit{
			CreatedAt: uc.clock.Now(),
			CreatedBy: actor,
		},
	})

	lines, err := uc.buildLines(input.Lines)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if err := entry.AddLine(line); err != nil {
			return nil, err
		}
	}

	if !entry.IsBalanced() {
		return nil, unbalancedError(entry)
	}

	if err := uc.entryRepo.Create(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err := uc.recordEvent(ctx, tx, entry, domain.EventTypeEntryCreated, actor); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}

// UpdateEntry replaces the header and lines of a draft entry.
func (uc *JournalEntryUseCase) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*domain.JournalEntry, error) {
	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}

	if err := validateLineInputs(input.Lines); err != nil {
		return nil, err
	}

	if err := uc.checkReferences(ctx, input.Lines); err != nil {
		return nil, err
	}

	var entry *domain.JournalEntry

	err := uc.retrier.Retry(ctx, func() error {
		var err error
		entry, err = uc.withLockedEntry(ctx, input.ID, func(tx Transaction, e *domain.JournalEntry) error {
			if err := e.Amend(input.Description, input.EntryDate, input.Reference); err != nil {
				return err
			}

			if err := uc.checkFiscalYear(ctx, e.FiscalYearID(), e.EntryDate()); err != nil {
				return err
			}

			lines, err := uc.buildLines(input.Lines)
			if err != nil {
				return err
			}

			if err := e.ReplaceLines(lines); err != nil {
				return err
			}

			if !e.IsBalanced() {
				return unbalancedError(e)
			}

			return uc.entryRepo.Update(ctx, tx, e)
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// PostEntry finalises a balanced draft entry.
func (uc *JournalEntryUseCase) PostEntry(ctx context.Context, id string) (*domain.JournalEntry, error) {
	actor := UserIDFromContext(ctx)

	var entry *domain.JournalEntry

	err := uc.retrier.Retry(ctx, func() error {
		var err error
		entry, err = uc.withLockedEntry(ctx, id, func(tx Transaction, e *domain.JournalEntry) error {
			if err := uc.checkFiscalYear(ctx, e.FiscalYearID(), e.EntryDate()); err != nil {
				return err
			}

			if err := e.Post(actor, uc.clock.Now()); err != nil {
				return err
			}

			if err := uc.entryRepo.Update(ctx, tx, e); err != nil {
				return err
			}

			return uc.recordEvent(ctx, tx, e, domain.EventTypeEntryPosted, actor)
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// VoidEntry cancels a draft entry.
func (uc *JournalEntryUseCase) VoidEntry(ctx context.Context, id string) (*domain.JournalEntry, error) {
	actor := UserIDFromContext(ctx)

	var entry *domain.JournalEntry

	err := uc.retrier.Retry(ctx, func() error {
		var err error
		entry, err = uc.withLockedEntry(ctx, id, func(tx Transaction, e *domain.JournalEntry) error {
			if err := e.Void(); err != nil {
				return err
			}

			if err := uc.entryRepo.Update(ctx, tx, e); err != nil {
				return err
			}

			return uc.recordEvent(ctx, tx, e, domain.EventTypeEntryVoided, actor)
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteEntry removes a draft or voided entry. Posted entries are permanent.
func (uc *JournalEntryUseCase) DeleteEntry(ctx context.Context, id string) error {
	actor := UserIDFromContext(ctx)

	return uc.retrier.Retry(ctx, func() error {
		_, err := uc.withLockedEntry(ctx, id, func(tx Transaction, e *domain.JournalEntry) error {
			if e.IsPosted() {
				return domain.ErrEntryPosted
			}

			if err := uc.recordEvent(ctx, tx, e, domain.EventTypeEntryDeleted, actor); err != nil {
				return err
			}

			return uc.entryRepo.Delete(ctx, tx, e.ID())
		})
		return err
	})
}

// GetEntry retrieves an entry by ID.
func (uc *JournalEntryUseCase) GetEntry(ctx context.Context, id string) (*domain.JournalEntry, error) {
	return uc.entryRepo.GetByID(ctx, id)
}

// ListEntries lists entries with optional filters.
func (uc *JournalEntryUseCase) ListEntries(ctx context.Context, input ListEntriesInput) ([]*domain.JournalEntry, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.entryRepo.List(ctx, EntryFilter{
		FiscalYearID: input.FiscalYearID,
		JournalCode:  input.JournalCode,
		Status:       input.Status,
		Limit:        limit,
		Offset:       offset,
	})
}

// withLockedEntry loads the entry FOR UPDATE, applies fn and commits.
func (uc *JournalEntryUseCase) withLockedEntry(
	ctx context.Context,
	id string,
	fn func(tx Transaction, e *domain.JournalEntry) error,
) (*domain.JournalEntry, error) {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	entry, err := uc.entryRepo.GetByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(tx, entry); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}

// checkFiscalYear requires the fiscal year to accept entries and entryDate to
// fall within its period.
func (uc *JournalEntryUseCase) checkFiscalYear(ctx context.Context, fiscalYearID string, entryDate time.Time) error {
	fy, err := uc.fiscalYearRepo.GetByID(ctx, fiscalYearID)
	if err != nil {
		return err
	}

	if !fy.AcceptsEntries() {
		return fmt.Errorf("%w: %d", domain.ErrFiscalYearClosed, fy.YearNumber)
	}

	if !fy.Contains(entryDate) {
		return fmt.Errorf("%w: %s not in %s..%s", domain.ErrDateOutOfPeriod,
			entryDate.Format(time.DateOnly), fy.StartDate.Format(time.DateOnly), fy.EndDate.Format(time.DateOnly))
	}

	return nil
}

func (uc *JournalEntryUseCase) checkReferences(ctx context.Context, lines []LineInput) error {
	accountIDs, thirdPartyIDs := collectReferences(lines)

	missing, err := uc.accountRepo.MissingIDs(ctx, accountIDs)
	if err != nil {
		return err
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", domain.ErrAccountNotFound, missing)
	}

	if len(thirdPartyIDs) == 0 {
		return nil
	}

	missing, err = uc.thirdPartyRepo.MissingIDs(ctx, thirdPartyIDs)
	if err != nil {
		return err
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %v", domain.ErrThirdPartyNotFound, missing)
	}

	return nil
}

func (uc *JournalEntryUseCase) buildLines(inputs []LineInput) ([]*domain.JournalLine, error) {
	lines := make([]*domain.JournalLine, 0, len(inputs))

	for i, in := range inputs {
		line, err := domain.NewJournalLine(uc.idGen.Generate(), in.AccountID, in.Label, in.Debit, in.Credit, in.ThirdPartyID)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}

func (uc *JournalEntryUseCase) recordEvent(ctx context.Context, tx Transaction, e *domain.JournalEntry, eventType, actor string) error {
	return uc.outboxRepo.Create(ctx, tx, &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   e.ID(),
		AggregateType: domain.AggregateTypeJournalEntry,
		EventType:     eventType,
		Payload:       domain.NewEntryEventPayload(e, actor),
		CreatedAt:     uc.clock.Now(),
	})
}

func validateLineInputs(lines []LineInput) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: an entry needs at least two lines, got %d", domain.ErrUnbalancedEntry, len(lines))
	}

	for i, l := range lines {
		if l.AccountID == "" {
			return fmt.Errorf("%w: line %d has no account", domain.ErrInvalidLine, i+1)
		}

		if len(l.Label) > domain.MaxLabelLength {
			return fmt.Errorf("%w: line %d label exceeds %d characters", domain.ErrInvalidLine, i+1, domain.MaxLabelLength)
		}
	}

	return nil
}

// collectReferences returns the sorted unique account and third-party IDs of the lines.
func collectReferences(lines []LineInput) ([]string, []string) {
	accounts := make(map[string]struct{})
	thirdParties := make(map[string]struct{})

	for _, l := range lines {
		accounts[l.AccountID] = struct{}{}

		if l.ThirdPartyID != nil && *l.ThirdPartyID != "" {
			thirdParties[*l.ThirdPartyID] = struct{}{}
		}
	}

	return sortedKeys(accounts), sortedKeys(thirdParties)
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func unbalancedError(e *domain.JournalEntry) error {
	return fmt.Errorf("%w: debit %s, credit %s", domain.ErrUnbalancedEntry, e.TotalDebit(), e.TotalCredit())
}
