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

// ReceivableService manages per-invoice money owed by clients. Settlement of
// a batch is all-or-nothing: one journal, one transaction.
type ReceivableService struct {
	receivableRepo portsrepo.ReceivableRepository
	accountRepo    portsrepo.AccountRepository
	clientRepo     portsrepo.ClientRepository
}

func NewReceivableService(receivableRepo portsrepo.ReceivableRepository, accountRepo portsrepo.AccountRepository, clientRepo portsrepo.ClientRepository) *ReceivableService {
	return &ReceivableService{
		receivableRepo: receivableRepo,
		accountRepo:    accountRepo,
		clientRepo:     clientRepo,
	}
}

func (s *ReceivableService) CreateReceivable(ctx context.Context, req dto.CreateReceivableRequest, creatorUserID string) (*domain.Receivable, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: receivable amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.clientRepo.FindClientByID(ctx, req.ClientID); err != nil {
		return nil, err
	}

	now := time.Now()
	receivable := domain.Receivable{
		ReceivableID: uuid.NewString(),
		ClientID:     req.ClientID,
		InvoiceNo:    req.InvoiceNo,
		Amount:       req.Amount,
		DueDate:      req.DueDate,
		Status:       domain.InvoiceOpen,
		AuditFields:  domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.receivableRepo.SaveReceivable(ctx, receivable); err != nil {
		return nil, err
	}
	return &receivable, nil
}

func (s *ReceivableService) GetReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error) {
	return s.receivableRepo.FindReceivableByID(ctx, receivableID)
}

func (s *ReceivableService) ListReceivables(ctx context.Context, clientID, status string) ([]domain.Receivable, error) {
	return s.receivableRepo.ListReceivables(ctx, clientID, status)
}

// SettleBulk marks every named receivable paid and posts one batch journal
// for the total. Any missing or already-paid receivable fails the whole
// batch with nothing written.
func (s *ReceivableService) SettleBulk(ctx context.Context, req dto.BulkPaymentRequest, userID string) ([]domain.Receivable, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// The repository re-verifies under lock; this pass computes the batch
	// total and fails fast on obvious problems.
	total := decimal.Zero
	seen := map[string]struct{}{}
	for _, id := range req.ReceivableIDs {
		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: receivable %s appears more than once", apperrors.ErrValidation, id)
		}
		seen[id] = struct{}{}

		receivable, err := s.receivableRepo.FindReceivableByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if receivable.Status != domain.InvoiceOpen {
			return nil, fmt.Errorf("%w: receivable %s is already %s", apperrors.ErrConflict, id, receivable.Status)
		}
		total = total.Add(receivable.Amount)
	}

	now := time.Now()
	journalID := uuid.NewString()
	lines := []domain.JournalLine{
		{
			LineID:      uuid.NewString(),
			JournalID:   journalID,
			AccountID:   req.DebitAccountID,
			Amount:      total,
			LineType:    domain.Debit,
			AuditFields: domain.NewAuditFields(userID, now),
		},
		{
			LineID:      uuid.NewString(),
			JournalID:   journalID,
			AccountID:   req.CreditAccountID,
			Amount:      total,
			LineType:    domain.Credit,
			AuditFields: domain.NewAuditFields(userID, now),
		},
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
		JournalDate: req.PaymentDate,
		Description: fmt.Sprintf("Bulk settlement of %d receivable(s)", len(req.ReceivableIDs)),
		Status:      domain.Posted,
		Lines:       lines,
		AuditFields: domain.NewAuditFields(userID, now),
	}

	if err := s.receivableRepo.SettleBulk(ctx, req.ReceivableIDs, journal, changes, userID, now); err != nil {
		return nil, err
	}
	logger.Info("Receivables settled in bulk", "count", len(req.ReceivableIDs), "journal_id", journalID, "total", total.String())

	settled := make([]domain.Receivable, 0, len(req.ReceivableIDs))
	for _, id := range req.ReceivableIDs {
		receivable, err := s.receivableRepo.FindReceivableByID(ctx, id)
		if err != nil {
			return nil, err
		}
		settled = append(settled, *receivable)
	}
	return settled, nil
}

// PayableService manages per-invoice money owed to suppliers.
type PayableService struct {
	payableRepo  portsrepo.PayableRepository
	accountRepo  portsrepo.AccountRepository
	supplierRepo portsrepo.SupplierRepository
}

func NewPayableService(payableRepo portsrepo.PayableRepository, accountRepo portsrepo.AccountRepository, supplierRepo portsrepo.SupplierRepository) *PayableService {
	return &PayableService{
		payableRepo:  payableRepo,
		accountRepo:  accountRepo,
		supplierRepo: supplierRepo,
	}
}

func (s *PayableService) CreatePayable(ctx context.Context, req dto.CreatePayableRequest, creatorUserID string) (*domain.Payable, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payable amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}

	now := time.Now()
	payable := domain.Payable{
		PayableID:   uuid.NewString(),
		SupplierID:  req.SupplierID,
		InvoiceNo:   req.InvoiceNo,
		Amount:      req.Amount,
		DueDate:     req.DueDate,
		Status:      domain.InvoiceOpen,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.payableRepo.SavePayable(ctx, payable); err != nil {
		return nil, err
	}
	return &payable, nil
}

func (s *PayableService) GetPayableByID(ctx context.Context, payableID string) (*domain.Payable, error) {
	return s.payableRepo.FindPayableByID(ctx, payableID)
}

func (s *PayableService) ListPayables(ctx context.Context, supplierID, status string) ([]domain.Payable, error) {
	return s.payableRepo.ListPayables(ctx, supplierID, status)
}

// SettlePayable marks the payable paid and posts its journal atomically.
// Settling twice comes back as ErrConflict.
func (s *PayableService) SettlePayable(ctx context.Context, payableID string, req dto.SettlePayableRequest, userID string) (*domain.Payable, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payable, err := s.payableRepo.FindPayableByID(ctx, payableID)
	if err != nil {
		return nil, err
	}
	if payable.Status != domain.InvoiceOpen {
		return nil, fmt.Errorf("%w: payable %s is already %s", apperrors.ErrConflict, payableID, payable.Status)
	}

	now := time.Now()
	journalID := uuid.NewString()
	lines := []domain.JournalLine{
		{
			LineID:      uuid.NewString(),
			JournalID:   journalID,
			AccountID:   req.DebitAccountID,
			Amount:      payable.Amount,
			LineType:    domain.Debit,
			AuditFields: domain.NewAuditFields(userID, now),
		},
		{
			LineID:      uuid.NewString(),
			JournalID:   journalID,
			AccountID:   req.CreditAccountID,
			Amount:      payable.Amount,
			LineType:    domain.Credit,
			AuditFields: domain.NewAuditFields(userID, now),
		},
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
		JournalDate: now,
		Description: fmt.Sprintf("Settlement of invoice %s", payable.InvoiceNo),
		Status:      domain.Posted,
		Lines:       lines,
		AuditFields: domain.NewAuditFields(userID, now),
	}

	if err := s.payableRepo.SettlePayable(ctx, payableID, journal, changes, userID, now); err != nil {
		return nil, err
	}
	logger.Info("Payable settled", "payable_id", payableID, "journal_id", journalID)

	return s.payableRepo.FindPayableByID(ctx, payableID)
}
