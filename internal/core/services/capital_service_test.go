package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
	"github.com/kmateev/biz_admin_app/internal/core/domain"
	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/dto"
)

// --- Mock EquityRepository ---
type MockEquityRepository struct {
	mock.Mock
}

func (m *MockEquityRepository) SaveEquityEntry(ctx context.Context, e domain.EquityEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEquityRepository) ListEquityEntries(ctx context.Context, limit, offset int) ([]domain.EquityEntry, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.EquityEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockEquityRepository) SaveEquityEntriesBulk(ctx context.Context, entries []domain.EquityEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// --- Mock DepreciationRepository ---
type MockDepreciationRepository struct {
	mock.Mock
}

func (m *MockDepreciationRepository) SaveDepreciationEntry(ctx context.Context, e domain.DepreciationEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockDepreciationRepository) ListDepreciationEntries(ctx context.Context, limit, offset int) ([]domain.DepreciationEntry, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.DepreciationEntry), args.Get(1).(int64), args.Error(2)
}

func (m *MockDepreciationRepository) SaveDepreciationEntriesBulk(ctx context.Context, entries []domain.DepreciationEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

type CapitalServiceTestSuite struct {
	suite.Suite
	mockEquityRepo       *MockEquityRepository
	mockDepreciationRepo *MockDepreciationRepository
	mockAccountRepo      *MockAccountRepository
	service              *services.CapitalService
	ctx                  context.Context

	equityAccountID  string
	assetAccountID   string
	expenseAccountID string
	revenueAccountID string
}

func (suite *CapitalServiceTestSuite) SetupTest() {
	suite.mockEquityRepo = new(MockEquityRepository)
	suite.mockDepreciationRepo = new(MockDepreciationRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewCapitalService(suite.mockEquityRepo, suite.mockDepreciationRepo, suite.mockAccountRepo)
	suite.ctx = context.Background()

	suite.equityAccountID = "acc-equity"
	suite.assetAccountID = "acc-asset"
	suite.expenseAccountID = "acc-expense"
	suite.revenueAccountID = "acc-revenue"

	accounts := map[string]domain.AccountType{
		suite.equityAccountID:  domain.Equity,
		suite.assetAccountID:   domain.Asset,
		suite.expenseAccountID: domain.Expense,
		suite.revenueAccountID: domain.Revenue,
	}
	for id, accountType := range accounts {
		account := &domain.Account{AccountID: id, AccountType: accountType, IsActive: true}
		suite.mockAccountRepo.On("FindAccountByID", mock.Anything, id).Return(account, nil).Maybe()
	}
}

func (suite *CapitalServiceTestSuite) equityRequest(accountID string, amount decimal.Decimal) dto.CreateEquityEntryRequest {
	return dto.CreateEquityEntryRequest{
		AccountID: accountID,
		EntryType: string(domain.EquityContribution),
		Amount:    amount,
		EntryDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *CapitalServiceTestSuite) depreciationRequest(amount decimal.Decimal) dto.CreateDepreciationEntryRequest {
	return dto.CreateDepreciationEntryRequest{
		AssetAccountID:   suite.assetAccountID,
		ExpenseAccountID: suite.expenseAccountID,
		Amount:           amount,
		Period:           "2025-06",
	}
}

func (suite *CapitalServiceTestSuite) TestCreateEquityEntriesBulk_Success() {
	req := dto.BulkEquityRequest{Entries: []dto.CreateEquityEntryRequest{
		suite.equityRequest(suite.equityAccountID, decimal.NewFromInt(1000)),
		suite.equityRequest(suite.equityAccountID, decimal.NewFromInt(2500)),
	}}
	suite.mockEquityRepo.On("SaveEquityEntriesBulk", mock.Anything, mock.MatchedBy(func(entries []domain.EquityEntry) bool {
		return len(entries) == 2
	})).Return(nil).Once()

	entries, err := suite.service.CreateEquityEntriesBulk(suite.ctx, req, "user-1")

	suite.NoError(err)
	suite.Len(entries, 2)
	suite.mockEquityRepo.AssertExpectations(suite.T())
}

func (suite *CapitalServiceTestSuite) TestCreateEquityEntriesBulk_WrongAccountTypeRejectsBatch() {
	req := dto.BulkEquityRequest{Entries: []dto.CreateEquityEntryRequest{
		suite.equityRequest(suite.equityAccountID, decimal.NewFromInt(1000)),
		suite.equityRequest(suite.revenueAccountID, decimal.NewFromInt(500)),
	}}

	entries, err := suite.service.CreateEquityEntriesBulk(suite.ctx, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "entry 1:")
	suite.Nil(entries)
	suite.mockEquityRepo.AssertNotCalled(suite.T(), "SaveEquityEntriesBulk", mock.Anything, mock.Anything)
}

func (suite *CapitalServiceTestSuite) TestCreateEquityEntriesBulk_NonPositiveAmountRejectsBatch() {
	req := dto.BulkEquityRequest{Entries: []dto.CreateEquityEntryRequest{
		suite.equityRequest(suite.equityAccountID, decimal.Zero),
		suite.equityRequest(suite.equityAccountID, decimal.NewFromInt(500)),
	}}

	entries, err := suite.service.CreateEquityEntriesBulk(suite.ctx, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "entry 0:")
	suite.Nil(entries)
	suite.mockEquityRepo.AssertNotCalled(suite.T(), "SaveEquityEntriesBulk", mock.Anything, mock.Anything)
}

func (suite *CapitalServiceTestSuite) TestCreateDepreciationEntriesBulk_Success() {
	req := dto.BulkDepreciationRequest{Entries: []dto.CreateDepreciationEntryRequest{
		suite.depreciationRequest(decimal.NewFromInt(200)),
		suite.depreciationRequest(decimal.NewFromInt(200)),
	}}
	suite.mockDepreciationRepo.On("SaveDepreciationEntriesBulk", mock.Anything, mock.MatchedBy(func(entries []domain.DepreciationEntry) bool {
		return len(entries) == 2
	})).Return(nil).Once()

	entries, err := suite.service.CreateDepreciationEntriesBulk(suite.ctx, req, "user-1")

	suite.NoError(err)
	suite.Len(entries, 2)
	suite.mockDepreciationRepo.AssertExpectations(suite.T())
}

func (suite *CapitalServiceTestSuite) TestCreateDepreciationEntriesBulk_WrongAssetAccountRejectsBatch() {
	bad := suite.depreciationRequest(decimal.NewFromInt(200))
	bad.AssetAccountID = suite.expenseAccountID
	req := dto.BulkDepreciationRequest{Entries: []dto.CreateDepreciationEntryRequest{
		suite.depreciationRequest(decimal.NewFromInt(200)),
		bad,
	}}

	entries, err := suite.service.CreateDepreciationEntriesBulk(suite.ctx, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "entry 1:")
	suite.Nil(entries)
	suite.mockDepreciationRepo.AssertNotCalled(suite.T(), "SaveDepreciationEntriesBulk", mock.Anything, mock.Anything)
}

func (suite *CapitalServiceTestSuite) TestCreateDepreciationEntriesBulk_NonPositiveAmountRejectsBatch() {
	req := dto.BulkDepreciationRequest{Entries: []dto.CreateDepreciationEntryRequest{
		suite.depreciationRequest(decimal.NewFromInt(-50)),
	}}

	entries, err := suite.service.CreateDepreciationEntriesBulk(suite.ctx, req, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(entries)
	suite.mockDepreciationRepo.AssertNotCalled(suite.T(), "SaveDepreciationEntriesBulk", mock.Anything, mock.Anything)
}

func TestCapitalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CapitalServiceTestSuite))
}
