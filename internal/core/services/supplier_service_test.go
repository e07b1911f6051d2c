package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
	"github.com/kmateev/biz_admin_app/internal/core/domain"
	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/dto"
)

// --- Mock SupplierRepository ---
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) SaveSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) UpdateSupplier(ctx context.Context, supplier domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) DeleteSupplier(ctx context.Context, supplierID string) error {
	args := m.Called(ctx, supplierID)
	return args.Error(0)
}

func (m *MockSupplierRepository) SavePayment(ctx context.Context, payment domain.SupplierPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockSupplierRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.SupplierPayment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplierPayment), args.Error(1)
}

func (m *MockSupplierRepository) ListPayments(ctx context.Context, supplierID string) ([]domain.SupplierPayment, error) {
	args := m.Called(ctx, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplierPayment), args.Error(1)
}

func (m *MockSupplierRepository) ConfirmPayment(ctx context.Context, paymentID string, journal domain.Journal, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, paymentID, journal, balanceChanges, userID, now)
	return args.Error(0)
}

// --- Test Suite ---
type SupplierServiceTestSuite struct {
	suite.Suite
	mockSupplierRepo *MockSupplierRepository
	mockAccountRepo  *MockAccountRepository
	service          *services.SupplierService

	expenseAccountID string
	cashAccountID    string
}

func (suite *SupplierServiceTestSuite) SetupTest() {
	suite.mockSupplierRepo = new(MockSupplierRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewSupplierService(suite.mockSupplierRepo, suite.mockAccountRepo)

	suite.expenseAccountID = uuid.NewString()
	suite.cashAccountID = uuid.NewString()
}

func (suite *SupplierServiceTestSuite) accounts() map[string]domain.Account {
	return map[string]domain.Account{
		suite.expenseAccountID: {AccountID: suite.expenseAccountID, AccountType: domain.Expense, IsActive: true},
		suite.cashAccountID:    {AccountID: suite.cashAccountID, AccountType: domain.Asset, IsActive: true},
	}
}

func (suite *SupplierServiceTestSuite) TestConfirmPayment_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	paymentID := uuid.NewString()
	supplierID := uuid.NewString()
	amount := decimal.NewFromInt(500)

	payment := &domain.SupplierPayment{
		PaymentID:   paymentID,
		SupplierID:  supplierID,
		Amount:      amount,
		PaymentDate: time.Now(),
		Status:      domain.PaymentInPay,
	}
	supplier := &domain.Supplier{SupplierID: supplierID, Name: "Metro Cash & Carry"}

	suite.mockSupplierRepo.On("FindPaymentByID", ctx, paymentID).Return(payment, nil).Once()
	suite.mockSupplierRepo.On("FindSupplierByID", ctx, supplierID).Return(supplier, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).Return(suite.accounts(), nil).Once()
	suite.mockSupplierRepo.On("ConfirmPayment", ctx, paymentID, mock.MatchedBy(func(j domain.Journal) bool {
		debits, credits := domain.SumLines(j.Lines)
		return debits.Equal(amount) && credits.Equal(amount) && j.Status == domain.Posted
	}), mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		// Expense goes up, cash goes down.
		return changes[suite.expenseAccountID].Equal(amount) && changes[suite.cashAccountID].Equal(amount.Neg())
	}), userID, mock.Anything).Return(nil).Once()

	confirmed := *payment
	confirmed.Status = domain.PaymentConfirmed
	suite.mockSupplierRepo.On("FindPaymentByID", ctx, paymentID).Return(&confirmed, nil).Once()

	result, err := suite.service.ConfirmPayment(ctx, paymentID, dto.ConfirmPaymentRequest{
		DebitAccountID:  suite.expenseAccountID,
		CreditAccountID: suite.cashAccountID,
	}, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentConfirmed, result.Status)
	suite.mockSupplierRepo.AssertExpectations(suite.T())
}

func (suite *SupplierServiceTestSuite) TestConfirmPayment_SecondConfirmConflicts() {
	ctx := context.Background()
	paymentID := uuid.NewString()
	payment := &domain.SupplierPayment{
		PaymentID: paymentID,
		Status:    domain.PaymentConfirmed,
	}

	suite.mockSupplierRepo.On("FindPaymentByID", ctx, paymentID).Return(payment, nil).Once()

	result, err := suite.service.ConfirmPayment(ctx, paymentID, dto.ConfirmPaymentRequest{
		DebitAccountID:  suite.expenseAccountID,
		CreditAccountID: suite.cashAccountID,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(result)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockSupplierRepo.AssertNotCalled(suite.T(), "ConfirmPayment",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SupplierServiceTestSuite) TestCreatePayment_NonPositiveAmount() {
	ctx := context.Background()

	payment, err := suite.service.CreatePayment(ctx, uuid.NewString(), dto.CreatePaymentRequest{
		Amount:      decimal.Zero,
		PaymentDate: time.Now(),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(payment)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestSupplierServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierServiceTestSuite))
}
