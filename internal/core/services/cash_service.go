package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
	"github.com/kmateev/biz_admin_app/internal/core/domain"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/pkg/pagination"
)

// CashService manages cash accounts and their ledgers. Running balances are
// computed on read, never stored.
type CashService struct {
	cashRepo portsrepo.CashRepository
}

func NewCashService(cashRepo portsrepo.CashRepository) *CashService {
	return &CashService{cashRepo: cashRepo}
}

func (s *CashService) CreateCashAccount(ctx context.Context, req dto.CreateCashAccountRequest, creatorUserID string) (*domain.CashAccount, error) {
	now := time.Now()
	account := domain.CashAccount{
		CashAccountID:  uuid.NewString(),
		Name:           req.Name,
		OpeningBalance: req.OpeningBalance,
		IsActive:       true,
		AuditFields:    domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.cashRepo.SaveCashAccount(ctx, account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *CashService) GetCashAccountByID(ctx context.Context, cashAccountID string) (*domain.CashAccount, error) {
	return s.cashRepo.FindCashAccountByID(ctx, cashAccountID)
}

func (s *CashService) ListCashAccounts(ctx context.Context) ([]domain.CashAccount, error) {
	return s.cashRepo.ListCashAccounts(ctx)
}

func (s *CashService) UpdateCashAccount(ctx context.Context, cashAccountID string, req dto.UpdateCashAccountRequest, updaterUserID string) (*domain.CashAccount, error) {
	account, err := s.cashRepo.FindCashAccountByID(ctx, cashAccountID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.Touch(updaterUserID, time.Now())

	if err := s.cashRepo.UpdateCashAccount(ctx, *account); err != nil {
		return nil, err
	}
	return account, nil
}

func (s *CashService) DeactivateCashAccount(ctx context.Context, cashAccountID string, userID string) error {
	return s.cashRepo.DeactivateCashAccount(ctx, cashAccountID, userID, time.Now())
}

// CreateCashEntry records one signed movement on an active cash account.
func (s *CashService) CreateCashEntry(ctx context.Context, cashAccountID string, req dto.CreateCashEntryRequest, creatorUserID string) (*domain.CashEntry, error) {
	if req.Amount.IsZero() {
		return nil, fmt.Errorf("%w: cash entry amount must not be zero", apperrors.ErrValidation)
	}
	account, err := s.cashRepo.FindCashAccountByID(ctx, cashAccountID)
	if err != nil {
		return nil, err
	}
	if !account.IsActive {
		return nil, fmt.Errorf("%w: cash account %s is inactive", apperrors.ErrConflict, cashAccountID)
	}

	now := time.Now()
	entry := domain.CashEntry{
		EntryID:       uuid.NewString(),
		CashAccountID: cashAccountID,
		EntryDate:     req.EntryDate,
		Description:   req.Description,
		Amount:        req.Amount,
		AuditFields:   domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.cashRepo.SaveCashEntry(ctx, entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// GetLedger returns one page of the account's ledger with running balances
// filled in. The balance carried into the page is the opening balance plus
// the sum of every entry before it, so pages stay consistent.
func (s *CashService) GetLedger(ctx context.Context, cashAccountID string, params pagination.Params) (*dto.CashLedgerResponse, error) {
	account, err := s.cashRepo.FindCashAccountByID(ctx, cashAccountID)
	if err != nil {
		return nil, err
	}

	entries, total, priorSum, err := s.cashRepo.ListCashEntries(ctx, cashAccountID, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}

	opening := account.OpeningBalance.Add(priorSum)
	entries = domain.ComputeRunningBalances(opening, entries)

	return &dto.CashLedgerResponse{
		CashAccountID:  account.CashAccountID,
		OpeningBalance: account.OpeningBalance,
		Entries:        entries,
		Total:          total,
		Page:           params.Page,
		Limit:          params.Limit,
	}, nil
}
