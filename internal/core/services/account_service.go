package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kmateev/biz_admin_app/internal/core/domain"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
	"github.com/kmateev/biz_admin_app/internal/dto"
)

// AccountService manages the chart of accounts.
type AccountService struct {
	accountRepo portsrepo.AccountRepository
}

func NewAccountService(accountRepo portsrepo.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	now := time.Now()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		Name:        req.Name,
		AccountType: domain.AccountType(req.AccountType),
		Description: req.Description,
		IsActive:    true,
		Balance:     req.Balance,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *AccountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, int64, error) {
	return s.accountRepo.ListAccounts(ctx, limit, offset)
}

// UpdateAccount changes descriptive fields only. Type and balance are fixed;
// balances move exclusively through journal posting.
func (s *AccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Description != nil {
		account.Description = *req.Description
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.Touch(updaterUserID, time.Now())

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		return nil, err
	}
	return account, nil
}

// DeactivateAccount soft-deletes the account; history stays intact.
func (s *AccountService) DeactivateAccount(ctx context.Context, accountID string, userID string) error {
	return s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now())
}
