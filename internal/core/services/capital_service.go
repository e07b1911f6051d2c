package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
	"github.com/kmateev/biz_admin_app/internal/core/domain"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/internal/middleware"
)

// CapitalService manages owner equity entries and depreciation postings.
// Bulk inserts are all-or-nothing.
type CapitalService struct {
	equityRepo       portsrepo.EquityRepository
	depreciationRepo portsrepo.DepreciationRepository
	accountRepo      portsrepo.AccountRepository
}

func NewCapitalService(equityRepo portsrepo.EquityRepository, depreciationRepo portsrepo.DepreciationRepository, accountRepo portsrepo.AccountRepository) *CapitalService {
	return &CapitalService{
		equityRepo:       equityRepo,
		depreciationRepo: depreciationRepo,
		accountRepo:      accountRepo,
	}
}

func (s *CapitalService) buildEquityEntry(ctx context.Context, req dto.CreateEquityEntryRequest, creatorUserID string, now time.Time) (*domain.EquityEntry, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: equity amount must be positive", apperrors.ErrValidation)
	}
	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}
	if account.AccountType != domain.Equity {
		return nil, fmt.Errorf("%w: account %s is %s, equity entries must post against an EQUITY account",
			apperrors.ErrValidation, req.AccountID, account.AccountType)
	}

	return &domain.EquityEntry{
		EntryID:     uuid.NewString(),
		AccountID:   req.AccountID,
		EntryType:   domain.EquityEntryType(req.EntryType),
		Amount:      req.Amount,
		EntryDate:   req.EntryDate,
		Notes:       req.Notes,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}, nil
}

func (s *CapitalService) CreateEquityEntry(ctx context.Context, req dto.CreateEquityEntryRequest, creatorUserID string) (*domain.EquityEntry, error) {
	entry, err := s.buildEquityEntry(ctx, req, creatorUserID, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.equityRepo.SaveEquityEntry(ctx, *entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *CapitalService) ListEquityEntries(ctx context.Context, limit, offset int) ([]domain.EquityEntry, int64, error) {
	return s.equityRepo.ListEquityEntries(ctx, limit, offset)
}

// CreateEquityEntriesBulk validates every entry up front, then inserts the
// whole batch in one transaction. Any bad row fails the batch.
func (s *CapitalService) CreateEquityEntriesBulk(ctx context.Context, req dto.BulkEquityRequest, creatorUserID string) ([]domain.EquityEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	entries := make([]domain.EquityEntry, 0, len(req.Entries))
	for i, er := range req.Entries {
		entry, err := s.buildEquityEntry(ctx, er, creatorUserID, now)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, *entry)
	}

	if err := s.equityRepo.SaveEquityEntriesBulk(ctx, entries); err != nil {
		return nil, err
	}
	logger.Info("Equity entries created in bulk", "count", len(entries))
	return entries, nil
}

func (s *CapitalService) buildDepreciationEntry(ctx context.Context, req dto.CreateDepreciationEntryRequest, creatorUserID string, now time.Time) (*domain.DepreciationEntry, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: depreciation amount must be positive", apperrors.ErrValidation)
	}

	asset, err := s.accountRepo.FindAccountByID(ctx, req.AssetAccountID)
	if err != nil {
		return nil, err
	}
	if asset.AccountType != domain.Asset {
		return nil, fmt.Errorf("%w: account %s is %s, depreciation must reduce an ASSET account",
			apperrors.ErrValidation, req.AssetAccountID, asset.AccountType)
	}
	expense, err := s.accountRepo.FindAccountByID(ctx, req.ExpenseAccountID)
	if err != nil {
		return nil, err
	}
	if expense.AccountType != domain.Expense {
		return nil, fmt.Errorf("%w: account %s is %s, depreciation must post into an EXPENSE account",
			apperrors.ErrValidation, req.ExpenseAccountID, expense.AccountType)
	}

	return &domain.DepreciationEntry{
		EntryID:          uuid.NewString(),
		AssetAccountID:   req.AssetAccountID,
		ExpenseAccountID: req.ExpenseAccountID,
		Amount:           req.Amount,
		Period:           req.Period,
		Notes:            req.Notes,
		AuditFields:      domain.NewAuditFields(creatorUserID, now),
	}, nil
}

func (s *CapitalService) CreateDepreciationEntry(ctx context.Context, req dto.CreateDepreciationEntryRequest, creatorUserID string) (*domain.DepreciationEntry, error) {
	entry, err := s.buildDepreciationEntry(ctx, req, creatorUserID, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.depreciationRepo.SaveDepreciationEntry(ctx, *entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *CapitalService) ListDepreciationEntries(ctx context.Context, limit, offset int) ([]domain.DepreciationEntry, int64, error) {
	return s.depreciationRepo.ListDepreciationEntries(ctx, limit, offset)
}

func (s *CapitalService) CreateDepreciationEntriesBulk(ctx context.Context, req dto.BulkDepreciationRequest, creatorUserID string) ([]domain.DepreciationEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	entries := make([]domain.DepreciationEntry, 0, len(req.Entries))
	for i, er := range req.Entries {
		entry, err := s.buildDepreciationEntry(ctx, er, creatorUserID, now)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, *entry)
	}

	if err := s.depreciationRepo.SaveDepreciationEntriesBulk(ctx, entries); err != nil {
		return nil, err
	}
	logger.Info("Depreciation entries created in bulk", "count", len(entries))
	return entries, nil
}
