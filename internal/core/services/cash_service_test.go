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
	"github.com/kmateev/biz_admin_app/pkg/pagination"
)

// --- Mock CashRepository ---
type MockCashRepository struct {
	mock.Mock
}

func (m *MockCashRepository) SaveCashAccount(ctx context.Context, a domain.CashAccount) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockCashRepository) FindCashAccountByID(ctx context.Context, cashAccountID string) (*domain.CashAccount, error) {
	args := m.Called(ctx, cashAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CashAccount), args.Error(1)
}

func (m *MockCashRepository) ListCashAccounts(ctx context.Context) ([]domain.CashAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashAccount), args.Error(1)
}

func (m *MockCashRepository) UpdateCashAccount(ctx context.Context, a domain.CashAccount) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockCashRepository) DeactivateCashAccount(ctx context.Context, cashAccountID string, userID string, now time.Time) error {
	args := m.Called(ctx, cashAccountID, userID, now)
	return args.Error(0)
}

func (m *MockCashRepository) SaveCashEntry(ctx context.Context, e domain.CashEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockCashRepository) ListCashEntries(ctx context.Context, cashAccountID string, limit, offset int) ([]domain.CashEntry, int64, decimal.Decimal, error) {
	args := m.Called(ctx, cashAccountID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, decimal.Zero, args.Error(3)
	}
	return args.Get(0).([]domain.CashEntry), args.Get(1).(int64), args.Get(2).(decimal.Decimal), args.Error(3)
}

// --- Test Suite ---
type CashServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCashRepository
	service  *services.CashService
}

func (suite *CashServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCashRepository)
	suite.service = services.NewCashService(suite.mockRepo)
}

func (suite *CashServiceTestSuite) TestGetLedger_RunningBalances() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.CashAccount{
		CashAccountID:  accountID,
		OpeningBalance: decimal.NewFromInt(1000),
		IsActive:       true,
	}
	entries := []domain.CashEntry{
		{EntryID: uuid.NewString(), Amount: decimal.NewFromInt(200)},
		{EntryID: uuid.NewString(), Amount: decimal.NewFromInt(-50)},
		{EntryID: uuid.NewString(), Amount: decimal.NewFromInt(25)},
	}

	suite.mockRepo.On("FindCashAccountByID", ctx, accountID).Return(account, nil).Once()
	suite.mockRepo.On("ListCashEntries", ctx, accountID, 20, 0).
		Return(entries, int64(3), decimal.Zero, nil).Once()

	ledger, err := suite.service.GetLedger(ctx, accountID, pagination.Params{Page: 1, Limit: 20, Offset: 0})

	suite.Require().NoError(err)
	suite.Require().Len(ledger.Entries, 3)
	suite.True(ledger.Entries[0].RunningBalance.Equal(decimal.NewFromInt(1200)))
	suite.True(ledger.Entries[1].RunningBalance.Equal(decimal.NewFromInt(1150)))
	suite.True(ledger.Entries[2].RunningBalance.Equal(decimal.NewFromInt(1175)))
	suite.Equal(int64(3), ledger.Total)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashServiceTestSuite) TestGetLedger_SecondPageCarriesPriorSum() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.CashAccount{
		CashAccountID:  accountID,
		OpeningBalance: decimal.NewFromInt(1000),
		IsActive:       true,
	}
	// Page two: the first page summed to +175.
	entries := []domain.CashEntry{
		{EntryID: uuid.NewString(), Amount: decimal.NewFromInt(10)},
	}

	suite.mockRepo.On("FindCashAccountByID", ctx, accountID).Return(account, nil).Once()
	suite.mockRepo.On("ListCashEntries", ctx, accountID, 3, 3).
		Return(entries, int64(4), decimal.NewFromInt(175), nil).Once()

	ledger, err := suite.service.GetLedger(ctx, accountID, pagination.Params{Page: 2, Limit: 3, Offset: 3})

	suite.Require().NoError(err)
	suite.Require().Len(ledger.Entries, 1)
	suite.True(ledger.Entries[0].RunningBalance.Equal(decimal.NewFromInt(1185)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CashServiceTestSuite) TestCreateCashEntry_InactiveAccount() {
	ctx := context.Background()
	accountID := uuid.NewString()
	account := &domain.CashAccount{CashAccountID: accountID, IsActive: false}

	suite.mockRepo.On("FindCashAccountByID", ctx, accountID).Return(account, nil).Once()

	entry, err := suite.service.CreateCashEntry(ctx, accountID, dto.CreateCashEntryRequest{
		EntryDate:   time.Now(),
		Description: "Deposit",
		Amount:      decimal.NewFromInt(100),
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCashEntry", mock.Anything, mock.Anything)
}

func (suite *CashServiceTestSuite) TestCreateCashEntry_ZeroAmount() {
	ctx := context.Background()

	entry, err := suite.service.CreateCashEntry(ctx, uuid.NewString(), dto.CreateCashEntryRequest{
		EntryDate:   time.Now(),
		Description: "Nothing",
		Amount:      decimal.Zero,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestCashServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashServiceTestSuite))
}
