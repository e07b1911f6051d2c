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

// SupplierService manages suppliers and their payments. Payment confirmation
// posts the ledger journal in the same transaction as the status change.
type SupplierService struct {
	supplierRepo portsrepo.SupplierRepository
	accountRepo  portsrepo.AccountRepository
}

func NewSupplierService(supplierRepo portsrepo.SupplierRepository, accountRepo portsrepo.AccountRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo, accountRepo: accountRepo}
}

func (s *SupplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, creatorUserID string) (*domain.Supplier, error) {
	now := time.Now()
	supplier := domain.Supplier{
		SupplierID:    uuid.NewString(),
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Country:       req.Country,
		AuditFields:   domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (s *SupplierService) GetSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	return s.supplierRepo.FindSupplierByID(ctx, supplierID)
}

func (s *SupplierService) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	return s.supplierRepo.ListSuppliers(ctx)
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, supplierID string, req dto.UpdateSupplierRequest, updaterUserID string) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.ContactPerson != nil {
		supplier.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		supplier.Phone = *req.Phone
	}
	if req.Email != nil {
		supplier.Email = *req.Email
	}
	if req.Country != nil {
		supplier.Country = *req.Country
	}
	supplier.Touch(updaterUserID, time.Now())

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, supplierID string) error {
	return s.supplierRepo.DeleteSupplier(ctx, supplierID)
}

// CreatePayment raises a payment against a supplier in the in_pay state.
// Nothing hits the ledger until the payment is confirmed.
func (s *SupplierService) CreatePayment(ctx context.Context, supplierID string, req dto.CreatePaymentRequest, creatorUserID string) (*domain.SupplierPayment, error) {
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if _, err := s.supplierRepo.FindSupplierByID(ctx, supplierID); err != nil {
		return nil, err
	}

	now := time.Now()
	payment := domain.SupplierPayment{
		PaymentID:   uuid.NewString(),
		SupplierID:  supplierID,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Status:      domain.PaymentInPay,
		Notes:       req.Notes,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.supplierRepo.SavePayment(ctx, payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *SupplierService) GetPaymentByID(ctx context.Context, paymentID string) (*domain.SupplierPayment, error) {
	return s.supplierRepo.FindPaymentByID(ctx, paymentID)
}

func (s *SupplierService) ListPayments(ctx context.Context, supplierID string) ([]domain.SupplierPayment, error) {
	return s.supplierRepo.ListPayments(ctx, supplierID)
}

// ConfirmPayment transitions in_pay -> confirmed and posts the ledger
// journal atomically. A second confirm comes back as ErrConflict with the
// ledger posted exactly once.
func (s *SupplierService) ConfirmPayment(ctx context.Context, paymentID string, req dto.ConfirmPaymentRequest, userID string) (*domain.SupplierPayment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	payment, err := s.supplierRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != domain.PaymentInPay {
		return nil, fmt.Errorf("%w: payment %s is already %s", apperrors.ErrConflict, paymentID, payment.Status)
	}

	supplier, err := s.supplierRepo.FindSupplierByID(ctx, payment.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to load supplier for payment confirmation: %w", err)
	}

	now := time.Now()
	journalID := uuid.NewString()
	lines := []domain.JournalLine{
		{
			LineID:      uuid.NewString(),
			JournalID:   journalID,
			AccountID:   req.DebitAccountID,
			Amount:      payment.Amount,
			LineType:    domain.Debit,
			AuditFields: domain.NewAuditFields(userID, now),
		},
		{
			LineID:      uuid.NewString(),
			JournalID:   journalID,
			AccountID:   req.CreditAccountID,
			Amount:      payment.Amount,
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
		JournalDate: payment.PaymentDate,
		Description: fmt.Sprintf("Payment to supplier %s", supplier.Name),
		Status:      domain.Posted,
		Lines:       lines,
		AuditFields: domain.NewAuditFields(userID, now),
	}

	if err := s.supplierRepo.ConfirmPayment(ctx, paymentID, journal, changes, userID, now); err != nil {
		return nil, err
	}
	logger.Info("Supplier payment confirmed", "payment_id", paymentID, "journal_id", journalID)

	return s.supplierRepo.FindPaymentByID(ctx, paymentID)
}
