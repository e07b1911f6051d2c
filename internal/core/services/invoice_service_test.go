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

// --- Mock ReceivableRepository ---
type MockReceivableRepository struct {
	mock.Mock
}

func (m *MockReceivableRepository) SaveReceivable(ctx context.Context, r domain.Receivable) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceivableRepository) FindReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error) {
	args := m.Called(ctx, receivableID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receivable), args.Error(1)
}

func (m *MockReceivableRepository) ListReceivables(ctx context.Context, clientID string, status string) ([]domain.Receivable, error) {
	args := m.Called(ctx, clientID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receivable), args.Error(1)
}

func (m *MockReceivableRepository) SettleBulk(ctx context.Context, receivableIDs []string, journal domain.Journal, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	args := m.Called(ctx, receivableIDs, journal, balanceChanges, userID, now)
	return args.Error(0)
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, c domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context, country string) ([]domain.Client, error) {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, c domain.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// --- Test Suite ---
type ReceivableServiceTestSuite struct {
	suite.Suite
	mockReceivableRepo *MockReceivableRepository
	mockAccountRepo    *MockAccountRepository
	mockClientRepo     *MockClientRepository
	service            *services.ReceivableService

	cashAccountID       string
	receivableAccountID string
}

func (suite *ReceivableServiceTestSuite) SetupTest() {
	suite.mockReceivableRepo = new(MockReceivableRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewReceivableService(suite.mockReceivableRepo, suite.mockAccountRepo, suite.mockClientRepo)

	suite.cashAccountID = uuid.NewString()
	suite.receivableAccountID = uuid.NewString()
}

func (suite *ReceivableServiceTestSuite) accounts() map[string]domain.Account {
	return map[string]domain.Account{
		suite.cashAccountID:       {AccountID: suite.cashAccountID, AccountType: domain.Asset, IsActive: true},
		suite.receivableAccountID: {AccountID: suite.receivableAccountID, AccountType: domain.Asset, IsActive: true},
	}
}

func (suite *ReceivableServiceTestSuite) TestSettleBulk_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	idA, idB := uuid.NewString(), uuid.NewString()

	suite.mockReceivableRepo.On("FindReceivableByID", ctx, idA).
		Return(&domain.Receivable{ReceivableID: idA, Status: domain.InvoiceOpen, Amount: decimal.NewFromInt(100)}, nil).Once()
	suite.mockReceivableRepo.On("FindReceivableByID", ctx, idB).
		Return(&domain.Receivable{ReceivableID: idB, Status: domain.InvoiceOpen, Amount: decimal.NewFromInt(150)}, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).Return(suite.accounts(), nil).Once()

	batchTotal := decimal.NewFromInt(250)
	suite.mockReceivableRepo.On("SettleBulk", ctx, []string{idA, idB}, mock.MatchedBy(func(j domain.Journal) bool {
		debits, credits := domain.SumLines(j.Lines)
		return debits.Equal(batchTotal) && credits.Equal(batchTotal)
	}), mock.Anything, userID, mock.Anything).Return(nil).Once()

	paid := time.Now()
	suite.mockReceivableRepo.On("FindReceivableByID", ctx, idA).
		Return(&domain.Receivable{ReceivableID: idA, Status: domain.InvoicePaid, PaidAt: &paid}, nil).Once()
	suite.mockReceivableRepo.On("FindReceivableByID", ctx, idB).
		Return(&domain.Receivable{ReceivableID: idB, Status: domain.InvoicePaid, PaidAt: &paid}, nil).Once()

	settled, err := suite.service.SettleBulk(ctx, dto.BulkPaymentRequest{
		ReceivableIDs:   []string{idA, idB},
		PaymentDate:     time.Now(),
		DebitAccountID:  suite.cashAccountID,
		CreditAccountID: suite.receivableAccountID,
	}, userID)

	suite.Require().NoError(err)
	suite.Len(settled, 2)
	suite.Equal(domain.InvoicePaid, settled[0].Status)
	suite.mockReceivableRepo.AssertExpectations(suite.T())
}

func (suite *ReceivableServiceTestSuite) TestSettleBulk_AlreadyPaidRollsBack() {
	ctx := context.Background()
	idA, idB := uuid.NewString(), uuid.NewString()

	suite.mockReceivableRepo.On("FindReceivableByID", ctx, idA).
		Return(&domain.Receivable{ReceivableID: idA, Status: domain.InvoiceOpen, Amount: decimal.NewFromInt(100)}, nil).Once()
	suite.mockReceivableRepo.On("FindReceivableByID", ctx, idB).
		Return(&domain.Receivable{ReceivableID: idB, Status: domain.InvoicePaid, Amount: decimal.NewFromInt(150)}, nil).Once()

	settled, err := suite.service.SettleBulk(ctx, dto.BulkPaymentRequest{
		ReceivableIDs:   []string{idA, idB},
		PaymentDate:     time.Now(),
		DebitAccountID:  suite.cashAccountID,
		CreditAccountID: suite.receivableAccountID,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(settled)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockReceivableRepo.AssertNotCalled(suite.T(), "SettleBulk",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReceivableServiceTestSuite) TestSettleBulk_DuplicateID() {
	ctx := context.Background()
	id := uuid.NewString()

	suite.mockReceivableRepo.On("FindReceivableByID", ctx, id).
		Return(&domain.Receivable{ReceivableID: id, Status: domain.InvoiceOpen, Amount: decimal.NewFromInt(100)}, nil).Maybe()

	settled, err := suite.service.SettleBulk(ctx, dto.BulkPaymentRequest{
		ReceivableIDs:   []string{id, id},
		PaymentDate:     time.Now(),
		DebitAccountID:  suite.cashAccountID,
		CreditAccountID: suite.receivableAccountID,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(settled)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReceivableServiceTestSuite) TestCreateReceivable_RejectsNonPositiveAmount() {
	ctx := context.Background()

	receivable, err := suite.service.CreateReceivable(ctx, dto.CreateReceivableRequest{
		ClientID:  uuid.NewString(),
		InvoiceNo: "INV-1",
		Amount:    decimal.NewFromInt(-5),
		DueDate:   time.Now(),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(receivable)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestReceivableServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReceivableServiceTestSuite))
}
