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

// JournalService posts and reverses balanced double-entry journals, keeping
// account balances in step within the same transaction.
type JournalService struct {
	journalRepo portsrepo.JournalRepository
	accountRepo portsrepo.AccountRepository
}

func NewJournalService(journalRepo portsrepo.JournalRepository, accountRepo portsrepo.AccountRepository) *JournalService {
	return &JournalService{journalRepo: journalRepo, accountRepo: accountRepo}
}

// validateLines enforces the double-entry rules: at least two lines across
// at least two distinct accounts, all amounts positive, debits equal credits.
func validateLines(lines []domain.JournalLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: journal must have at least two lines", apperrors.ErrValidation)
	}

	accounts := map[string]struct{}{}
	for _, line := range lines {
		if line.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: line amount must be positive for account %s", apperrors.ErrValidation, line.AccountID)
		}
		accounts[line.AccountID] = struct{}{}
	}
	if len(accounts) < 2 {
		return fmt.Errorf("%w: journal must affect at least two different accounts", apperrors.ErrValidation)
	}

	debits, credits := domain.SumLines(lines)
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: journal does not balance, debits total %s and credits total %s",
			apperrors.ErrValidation, debits.String(), credits.String())
	}
	return nil
}

// computeBalanceChanges computes the signed balance delta per account for a
// set of lines, using each account's type for the sign convention. Shared by
// every service that posts journals.
func computeBalanceChanges(ctx context.Context, accountRepo portsrepo.AccountRepository, lines []domain.JournalLine) (map[string]decimal.Decimal, error) {
	accountIDs := make([]string, 0, len(lines))
	seen := map[string]struct{}{}
	for _, line := range lines {
		if _, ok := seen[line.AccountID]; !ok {
			seen[line.AccountID] = struct{}{}
			accountIDs = append(accountIDs, line.AccountID)
		}
	}

	accounts, err := accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts for journal: %w", err)
	}

	changes := map[string]decimal.Decimal{}
	for _, line := range lines {
		account, ok := accounts[line.AccountID]
		if !ok {
			return nil, fmt.Errorf("%w: account %s does not exist", apperrors.ErrValidation, line.AccountID)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, line.AccountID)
		}
		delta := line.SignedAmount(account.AccountType)
		changes[line.AccountID] = changes[line.AccountID].Add(delta)
	}
	return changes, nil
}

// CreateJournal validates and posts a journal atomically.
func (s *JournalService) CreateJournal(ctx context.Context, req dto.CreateJournalRequest, creatorUserID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()
	journalID := uuid.NewString()

	lines := make([]domain.JournalLine, 0, len(req.Lines))
	for _, lr := range req.Lines {
		lines = append(lines, domain.JournalLine{
			LineID:      uuid.NewString(),
			JournalID:   journalID,
			AccountID:   lr.AccountID,
			Amount:      lr.Amount,
			LineType:    lr.LineType,
			Notes:       lr.Notes,
			AuditFields: domain.NewAuditFields(creatorUserID, now),
		})
	}

	if err := validateLines(lines); err != nil {
		return nil, err
	}

	changes, err := computeBalanceChanges(ctx, s.accountRepo, lines)
	if err != nil {
		return nil, err
	}

	journal := domain.Journal{
		JournalID:   journalID,
		JournalDate: req.JournalDate,
		Description: req.Description,
		Status:      domain.Posted,
		Lines:       lines,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}

	if err := s.journalRepo.SaveJournal(ctx, journal, changes); err != nil {
		return nil, err
	}
	logger.Info("Journal posted", "journal_id", journalID, "lines", len(lines))
	return &journal, nil
}

func (s *JournalService) GetJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	return s.journalRepo.FindJournalByID(ctx, journalID)
}

func (s *JournalService) ListJournals(ctx context.Context, limit, offset int) ([]domain.Journal, int64, error) {
	return s.journalRepo.ListJournals(ctx, limit, offset)
}

// ReverseJournal posts a mirror-image journal and marks the original
// REVERSED, all in one transaction. A journal can only be reversed once.
func (s *JournalService) ReverseJournal(ctx context.Context, journalID string, userID string) (*domain.Journal, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	original, err := s.journalRepo.FindJournalByID(ctx, journalID)
	if err != nil {
		return nil, err
	}
	if original.Status != domain.Posted {
		return nil, fmt.Errorf("%w: journal %s is %s, only POSTED journals can be reversed",
			apperrors.ErrConflict, journalID, original.Status)
	}

	now := time.Now()
	reversingID := uuid.NewString()
	lines := make([]domain.JournalLine, 0, len(original.Lines))
	for _, line := range original.Lines {
		flipped := domain.Credit
		if line.LineType == domain.Credit {
			flipped = domain.Debit
		}
		lines = append(lines, domain.JournalLine{
			LineID:      uuid.NewString(),
			JournalID:   reversingID,
			AccountID:   line.AccountID,
			Amount:      line.Amount,
			LineType:    flipped,
			Notes:       line.Notes,
			AuditFields: domain.NewAuditFields(userID, now),
		})
	}

	changes, err := computeBalanceChanges(ctx, s.accountRepo, lines)
	if err != nil {
		return nil, err
	}

	reversing := domain.Journal{
		JournalID:           reversingID,
		JournalDate:         now,
		Description:         fmt.Sprintf("Reversal of: %s", original.Description),
		Status:              domain.Posted,
		ReversalOfJournalID: original.JournalID,
		Lines:               lines,
		AuditFields:         domain.NewAuditFields(userID, now),
	}

	if err := s.journalRepo.ReverseJournal(ctx, original.JournalID, reversing, changes); err != nil {
		return nil, err
	}
	logger.Info("Journal reversed", "journal_id", journalID, "reversing_journal_id", reversingID)
	return &reversing, nil
}
