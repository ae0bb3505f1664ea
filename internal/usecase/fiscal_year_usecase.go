package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/fiscledger/internal/domain"
)

const fiscalYearCachePrefix = "fiscal_year:"

// FiscalYearUseCase handles fiscal year business logic.
type FiscalYearUseCase struct {
	repo   FiscalYearRepository
	cache  Cache
	idGen  IDGenerator
	clock  Clock
	logger zerolog.Logger
}

// NewFiscalYearUseCase creates a new FiscalYearUseCase. cache may be nil.
func NewFiscalYearUseCase(repo FiscalYearRepository, cache Cache, idGen IDGenerator, clock Clock, logger zerolog.Logger) *FiscalYearUseCase {
	return &FiscalYearUseCase{
		repo:   repo,
		cache:  cache,
		idGen:  idGen,
		clock:  clock,
		logger: logger,
	}
}

// CreateFiscalYearInput represents input for opening a fiscal year.
type CreateFiscalYearInput struct {
	StartDate  time.Time
	EndDate    time.Time
	YearNumber int
}

// CreateFiscalYear opens a new fiscal year.
func (uc *FiscalYearUseCase) CreateFiscalYear(ctx context.Context, input CreateFiscalYearInput) (*domain.FiscalYear, error) {
	fy := &domain.FiscalYear{
		ID:         uc.idGen.Generate(),
		YearNumber: input.YearNumber,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
		Status:     domain.FiscalYearOpen,
		CreatedAt:  uc.clock.Now(),
	}

	if err := fy.Validate(); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, fy); err != nil {
		return nil, err
	}

	return fy, nil
}

// GetFiscalYear retrieves a fiscal year, reading through the cache.
func (uc *FiscalYearUseCase) GetFiscalYear(ctx context.Context, id string) (*domain.FiscalYear, error) {
	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, fiscalYearCachePrefix+id); err == nil && data != nil {
			var fy domain.FiscalYear
			if err := json.Unmarshal(data, &fy); err == nil {
				return &fy, nil
			}
		}
	}

	fy, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.store(ctx, fy)

	return fy, nil
}

// ListFiscalYears lists fiscal years, most recent first.
func (uc *FiscalYearUseCase) ListFiscalYears(ctx context.Context, limit, offset int) ([]*domain.FiscalYear, error) {
	limit, offset = domain.ValidatePagination(limit, offset)
	return uc.repo.List(ctx, limit, offset)
}

// LockFiscalYear freezes an open fiscal year.
func (uc *FiscalYearUseCase) LockFiscalYear(ctx context.Context, id string) (*domain.FiscalYear, error) {
	return uc.transition(ctx, id, func(fy *domain.FiscalYear) error {
		return fy.Lock()
	})
}

// CloseFiscalYear closes a fiscal year, optionally recording its closing entry.
func (uc *FiscalYearUseCase) CloseFiscalYear(ctx context.Context, id, closingEntryID string) (*domain.FiscalYear, error) {
	return uc.transition(ctx, id, func(fy *domain.FiscalYear) error {
		return fy.Close(closingEntryID)
	})
}

func (uc *FiscalYearUseCase) transition(ctx context.Context, id string, apply func(*domain.FiscalYear) error) (*domain.FiscalYear, error) {
	fy, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := apply(fy); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateStatus(ctx, fy); err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, fiscalYearCachePrefix+id); err != nil {
			uc.logger.Warn().Err(err).Str("fiscal_year_id", id).Msg("failed to evict fiscal year from cache")
		}
	}

	return fy, nil
}

func (uc *FiscalYearUseCase) store(ctx context.Context, fy *domain.FiscalYear) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(fy)
	if err != nil {
		return
	}

	if err := uc.cache.Set(ctx, fiscalYearCachePrefix+fy.ID, data, FiscalYearCacheTTL); err != nil {
		uc.logger.Warn().Err(err).Str("fiscal_year_id", fy.ID).Msg("failed to cache fiscal year")
	}
}
