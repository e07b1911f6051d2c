package services_test

import (
	"context"
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

// --- Mock ServiceTypeRepository ---
type MockServiceTypeRepository struct {
	mock.Mock
}

func (m *MockServiceTypeRepository) SaveServiceType(ctx context.Context, st domain.ServiceType) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *MockServiceTypeRepository) FindServiceTypeByID(ctx context.Context, serviceTypeID string) (*domain.ServiceType, error) {
	args := m.Called(ctx, serviceTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceType), args.Error(1)
}

func (m *MockServiceTypeRepository) UpdateServiceType(ctx context.Context, st domain.ServiceType) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *MockServiceTypeRepository) DeleteServiceType(ctx context.Context, serviceTypeID string) error {
	args := m.Called(ctx, serviceTypeID)
	return args.Error(0)
}

// --- Mock RequestRepository ---
type MockRequestRepository struct {
	mock.Mock
}

func (m *MockRequestRepository) SaveRequest(ctx context.Context, req domain.ServiceRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockRequestRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.ServiceRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRequest), args.Error(1)
}

func (m *MockRequestRepository) ListRequests(ctx context.Context, status, priority string) ([]domain.ServiceRequest, error) {
	args := m.Called(ctx, status, priority)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceRequest), args.Error(1)
}

func (m *MockRequestRepository) PatchRequest(ctx context.Context, requestID string, patch domain.RequestPatch, userID string, now time.Time) error {
	args := m.Called(ctx, requestID, patch, userID, now)
	return args.Error(0)
}

// --- Test Suite ---
type RequestServiceTestSuite struct {
	suite.Suite
	mockRequestRepo     *MockRequestRepository
	mockServiceTypeRepo *MockServiceTypeRepository
	mockUserRepo        *MockUserRepository
	service             *services.RequestService
}

func (suite *RequestServiceTestSuite) SetupTest() {
	suite.mockRequestRepo = new(MockRequestRepository)
	suite.mockServiceTypeRepo = new(MockServiceTypeRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewRequestService(suite.mockRequestRepo, suite.mockServiceTypeRepo, suite.mockUserRepo)
}

func (suite *RequestServiceTestSuite) validCreateRequest(userID, serviceTypeID string) dto.CreateRequestRequest {
	return dto.CreateRequestRequest{
		UserID:           userID,
		UserName:         "jordan",
		ServiceTypeID:    serviceTypeID,
		PickupLocation:   "Warehouse A",
		DeliveryLocation: "Store 12",
		PickupDate:       time.Now().Add(24 * time.Hour),
	}
}

func (suite *RequestServiceTestSuite) TestCreateRequest_Defaults() {
	ctx := context.Background()
	userID := uuid.NewString()
	serviceTypeID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockServiceTypeRepo.On("FindServiceTypeByID", ctx, serviceTypeID).
		Return(&domain.ServiceType{ServiceTypeID: serviceTypeID}, nil).Once()
	suite.mockRequestRepo.On("SaveRequest", ctx, mock.MatchedBy(func(r domain.ServiceRequest) bool {
		return r.Status == domain.RequestPending && r.MyStatus == 0
	})).Return(nil).Once()

	request, err := suite.service.CreateRequest(ctx, suite.validCreateRequest(userID, serviceTypeID), userID)

	suite.Require().NoError(err)
	suite.Equal(domain.RequestPending, request.Status)
	suite.Equal(0, request.MyStatus)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func (suite *RequestServiceTestSuite) TestCreateRequest_UnknownServiceType() {
	ctx := context.Background()
	userID := uuid.NewString()
	serviceTypeID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(&domain.User{UserID: userID}, nil).Once()
	suite.mockServiceTypeRepo.On("FindServiceTypeByID", ctx, serviceTypeID).
		Return(nil, apperrors.ErrNotFound).Once()

	request, err := suite.service.CreateRequest(ctx, suite.validCreateRequest(userID, serviceTypeID), userID)

	suite.Require().Error(err)
	suite.Nil(request)
	// A missing reference is the caller's mistake, not a missing resource.
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "SaveRequest", mock.Anything, mock.Anything)
}

func (suite *RequestServiceTestSuite) TestPatchRequest_EmptyPatch() {
	ctx := context.Background()

	request, err := suite.service.PatchRequest(ctx, uuid.NewString(), dto.PatchRequestRequest{}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(request)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRequestRepo.AssertNotCalled(suite.T(), "PatchRequest",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RequestServiceTestSuite) TestPatchRequest_PartialFields() {
	ctx := context.Background()
	requestID := uuid.NewString()
	userID := uuid.NewString()
	newStatus := "in_progress"

	suite.mockRequestRepo.On("PatchRequest", ctx, requestID, mock.MatchedBy(func(p domain.RequestPatch) bool {
		return p.Status != nil && *p.Status == domain.RequestInProgress && p.PickupLocation == nil
	}), userID, mock.Anything).Return(nil).Once()
	suite.mockRequestRepo.On("FindRequestByID", ctx, requestID).
		Return(&domain.ServiceRequest{RequestID: requestID, Status: domain.RequestInProgress}, nil).Once()

	request, err := suite.service.PatchRequest(ctx, requestID, dto.PatchRequestRequest{Status: &newStatus}, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.RequestInProgress, request.Status)
	suite.mockRequestRepo.AssertExpectations(suite.T())
}

func TestRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RequestServiceTestSuite))
}
