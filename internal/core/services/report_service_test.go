package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
	"github.com/kmateev/biz_admin_app/internal/core/domain"
	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/internal/dto"
)

// --- Mock ReportRepository ---
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) SaveFeedbackReport(ctx context.Context, r domain.FeedbackReport) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportRepository) ListFeedbackReports(ctx context.Context, f domain.ReportFilter, limit, offset int) ([]domain.FeedbackReport, int64, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.FeedbackReport), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportRepository) ListAllFeedbackReports(ctx context.Context, f domain.ReportFilter) ([]domain.FeedbackReport, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeedbackReport), args.Error(1)
}

func (m *MockReportRepository) SaveVisibilityReport(ctx context.Context, r domain.VisibilityReport) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReportRepository) ListVisibilityReports(ctx context.Context, f domain.ReportFilter, limit, offset int) ([]domain.VisibilityReport, int64, error) {
	args := m.Called(ctx, f, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.VisibilityReport), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportRepository) ListAllVisibilityReports(ctx context.Context, f domain.ReportFilter) ([]domain.VisibilityReport, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.VisibilityReport), args.Error(1)
}

// --- Mock SalesRepRepository ---
type MockSalesRepRepository struct {
	mock.Mock
}

func (m *MockSalesRepRepository) SaveSalesRep(ctx context.Context, r domain.SalesRep) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockSalesRepRepository) FindSalesRepByID(ctx context.Context, repID string) (*domain.SalesRep, error) {
	args := m.Called(ctx, repID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SalesRep), args.Error(1)
}

func (m *MockSalesRepRepository) ListSalesReps(ctx context.Context, country string) ([]domain.SalesRep, error) {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SalesRep), args.Error(1)
}

func (m *MockSalesRepRepository) UpdateSalesRep(ctx context.Context, r domain.SalesRep) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockSalesRepRepository) DeleteSalesRep(ctx context.Context, repID string) error {
	args := m.Called(ctx, repID)
	return args.Error(0)
}

// --- Test Suite ---
type ReportServiceTestSuite struct {
	suite.Suite
	mockReportRepo *MockReportRepository
	mockRepRepo    *MockSalesRepRepository
	mockClientRepo *MockClientRepository
	service        *services.ReportService
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockReportRepo = new(MockReportRepository)
	suite.mockRepRepo = new(MockSalesRepRepository)
	suite.mockClientRepo = new(MockClientRepository)
	suite.service = services.NewReportService(suite.mockReportRepo, suite.mockRepRepo, suite.mockClientRepo)
}

func (suite *ReportServiceTestSuite) TestParseFilter() {
	filter, err := services.ParseFilter(dto.ReportQueryParams{
		Country: "BG",
		RepID:   "rep-1",
		From:    "2026-01-01",
		To:      "2026-06-30",
	})

	suite.Require().NoError(err)
	suite.Equal("BG", filter.Country)
	suite.Equal("rep-1", filter.RepID)
	suite.Equal(2026, filter.From.Year())
	suite.Equal(time.June, filter.To.Month())
}

func (suite *ReportServiceTestSuite) TestParseFilter_BadDate() {
	_, err := services.ParseFilter(dto.ReportQueryParams{From: "01/02/2026"})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportServiceTestSuite) TestParseFilter_InvertedRange() {
	_, err := services.ParseFilter(dto.ReportQueryParams{From: "2026-06-30", To: "2026-01-01"})
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportServiceTestSuite) TestCreateFeedbackReport_UnknownRep() {
	ctx := context.Background()
	repID := uuid.NewString()

	suite.mockRepRepo.On("FindSalesRepByID", ctx, repID).Return(nil, apperrors.ErrNotFound).Once()

	report, err := suite.service.CreateFeedbackReport(ctx, dto.CreateFeedbackReportRequest{
		RepID:     repID,
		ClientID:  uuid.NewString(),
		Country:   "BG",
		VisitDate: time.Now(),
		Rating:    4,
	}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(report)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReportRepo.AssertNotCalled(suite.T(), "SaveFeedbackReport", mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestExportFeedbackReportsCSV() {
	ctx := context.Background()
	visit := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	reports := []domain.FeedbackReport{
		{ReportID: "r1", RepID: "rep-1", ClientID: "c1", Country: "BG", VisitDate: visit, Rating: 5, Comments: "great shelf, restocked"},
	}

	suite.mockReportRepo.On("ListAllFeedbackReports", ctx, mock.Anything).Return(reports, nil).Once()

	data, err := suite.service.ExportFeedbackReportsCSV(ctx, domain.ReportFilter{Country: "BG"})

	suite.Require().NoError(err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	suite.Require().Len(lines, 2)
	suite.Equal("reportID,repID,clientID,country,visitDate,rating,comments", lines[0])
	suite.Contains(lines[1], "2026-03-15")
	suite.Contains(lines[1], "5")
	suite.mockReportRepo.AssertExpectations(suite.T())
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
