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

// --- Mock JournalRepository ---
type MockJournalRepository struct {
	mock.Mock
}

func (m *MockJournalRepository) SaveJournal(ctx context.Context, journal domain.Journal, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, journal, balanceChanges)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error) {
	args := m.Called(ctx, journalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Journal), args.Error(1)
}

func (m *MockJournalRepository) ListJournals(ctx context.Context, limit, offset int) ([]domain.Journal, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Journal), args.Get(1).(int64), args.Error(2)
}

func (m *MockJournalRepository) ReverseJournal(ctx context.Context, originalJournalID string, reversing domain.Journal, balanceChanges map[string]decimal.Decimal) error {
	args := m.Called(ctx, originalJournalID, reversing, balanceChanges)
	return args.Error(0)
}

// --- Mock AccountRepository ---
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Account), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	args := m.Called(ctx, accountID, userID, now)
	return args.Error(0)
}

// --- Test Suite ---
type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountRepo *MockAccountRepository
	service         *services.JournalService

	cashAccountID    string
	revenueAccountID string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountRepo)

	suite.cashAccountID = uuid.NewString()
	suite.revenueAccountID = uuid.NewString()
}

func (suite *JournalServiceTestSuite) accounts() map[string]domain.Account {
	return map[string]domain.Account{
		suite.cashAccountID:    {AccountID: suite.cashAccountID, AccountType: domain.Asset, IsActive: true},
		suite.revenueAccountID: {AccountID: suite.revenueAccountID, AccountType: domain.Revenue, IsActive: true},
	}
}

func (suite *JournalServiceTestSuite) balancedRequest(amount decimal.Decimal) dto.CreateJournalRequest {
	return dto.CreateJournalRequest{
		JournalDate: time.Now(),
		Description: "Cash sale",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccountID, Amount: amount, LineType: domain.Debit},
			{AccountID: suite.revenueAccountID, Amount: amount, LineType: domain.Credit},
		},
	}
}

func (suite *JournalServiceTestSuite) TestCreateJournal_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	amount := decimal.NewFromInt(250)

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).Return(suite.accounts(), nil).Once()
	suite.mockJournalRepo.On("SaveJournal", ctx, mock.MatchedBy(func(j domain.Journal) bool {
		return j.Status == domain.Posted && len(j.Lines) == 2 && j.CreatedBy == userID
	}), mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		// Debit to an asset and credit to revenue both push balances up.
		return changes[suite.cashAccountID].Equal(amount) && changes[suite.revenueAccountID].Equal(amount)
	})).Return(nil).Once()

	journal, err := suite.service.CreateJournal(ctx, suite.balancedRequest(amount), userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(journal)
	suite.Equal(domain.Posted, journal.Status)
	suite.Len(journal.Lines, 2)

	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournal_Unbalanced() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		JournalDate: time.Now(),
		Description: "Does not balance",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccountID, Amount: decimal.NewFromInt(100), LineType: domain.Debit},
			{AccountID: suite.revenueAccountID, Amount: decimal.NewFromInt(90), LineType: domain.Credit},
		},
	}

	journal, err := suite.service.CreateJournal(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrValidation)
	// The error must name both totals.
	suite.Contains(err.Error(), "100")
	suite.Contains(err.Error(), "90")
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournal", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_SingleAccount() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		JournalDate: time.Now(),
		Description: "Same account both sides",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccountID, Amount: decimal.NewFromInt(100), LineType: domain.Debit},
			{AccountID: suite.cashAccountID, Amount: decimal.NewFromInt(100), LineType: domain.Credit},
		},
	}

	journal, err := suite.service.CreateJournal(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateJournalRequest{
		JournalDate: time.Now(),
		Description: "Zero amount line",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccountID, Amount: decimal.Zero, LineType: domain.Debit},
			{AccountID: suite.revenueAccountID, Amount: decimal.Zero, LineType: domain.Credit},
		},
	}

	journal, err := suite.service.CreateJournal(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournal_InactiveAccount() {
	ctx := context.Background()
	amount := decimal.NewFromInt(50)
	accounts := suite.accounts()
	inactive := accounts[suite.cashAccountID]
	inactive.IsActive = false
	accounts[suite.cashAccountID] = inactive

	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).Return(accounts, nil).Once()

	journal, err := suite.service.CreateJournal(ctx, suite.balancedRequest(amount), uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(journal)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestReverseJournal_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	journalID := uuid.NewString()
	amount := decimal.NewFromInt(75)

	original := &domain.Journal{
		JournalID:   journalID,
		Description: "Cash sale",
		Status:      domain.Posted,
		Lines: []domain.JournalLine{
			{LineID: uuid.NewString(), JournalID: journalID, AccountID: suite.cashAccountID, Amount: amount, LineType: domain.Debit},
			{LineID: uuid.NewString(), JournalID: journalID, AccountID: suite.revenueAccountID, Amount: amount, LineType: domain.Credit},
		},
	}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journalID).Return(original, nil).Once()
	suite.mockAccountRepo.On("FindAccountsByIDs", ctx, mock.Anything).Return(suite.accounts(), nil).Once()
	suite.mockJournalRepo.On("ReverseJournal", ctx, journalID, mock.MatchedBy(func(j domain.Journal) bool {
		if j.ReversalOfJournalID != journalID || len(j.Lines) != 2 {
			return false
		}
		// Line types must be flipped.
		return j.Lines[0].LineType == domain.Credit && j.Lines[1].LineType == domain.Debit
	}), mock.MatchedBy(func(changes map[string]decimal.Decimal) bool {
		return changes[suite.cashAccountID].Equal(amount.Neg()) && changes[suite.revenueAccountID].Equal(amount.Neg())
	})).Return(nil).Once()

	reversing, err := suite.service.ReverseJournal(ctx, journalID, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(reversing)
	suite.Equal(journalID, reversing.ReversalOfJournalID)

	suite.mockJournalRepo.AssertExpectations(suite.T())
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestReverseJournal_AlreadyReversed() {
	ctx := context.Background()
	journalID := uuid.NewString()
	original := &domain.Journal{JournalID: journalID, Status: domain.Reversed}

	suite.mockJournalRepo.On("FindJournalByID", ctx, journalID).Return(original, nil).Once()

	reversing, err := suite.service.ReverseJournal(ctx, journalID, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(reversing)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "ReverseJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}
