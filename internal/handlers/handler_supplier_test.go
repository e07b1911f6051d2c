package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kmateev/biz_admin_app/internal/core/domain"
	"github.com/kmateev/biz_admin_app/internal/core/services"
	"github.com/kmateev/biz_admin_app/pkg/response"
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

type SupplierHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockRepo *MockSupplierRepository
}

func (s *SupplierHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockRepo = new(MockSupplierRepository)
	s.router = gin.New()
	financial := s.router.Group("/financial")
	registerSupplierRoutes(financial, services.NewSupplierService(s.mockRepo, nil))
}

func (s *SupplierHandlerTestSuite) serve(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.router.ServeHTTP(w, req)
	return w
}

func (s *SupplierHandlerTestSuite) TestListAllPayments_Unfiltered() {
	payments := []domain.SupplierPayment{
		{PaymentID: "pay-1", SupplierID: "sup-1", Amount: decimal.NewFromInt(100), Status: domain.PaymentInPay},
		{PaymentID: "pay-2", SupplierID: "sup-2", Amount: decimal.NewFromInt(250), Status: domain.PaymentConfirmed},
	}
	s.mockRepo.On("ListPayments", mock.Anything, "").Return(payments, nil).Once()

	w := s.serve("/financial/payments")

	s.Equal(http.StatusOK, w.Code)
	var env response.Envelope
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	s.True(env.Success)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *SupplierHandlerTestSuite) TestListAllPayments_SupplierQueryFilter() {
	s.mockRepo.On("ListPayments", mock.Anything, "sup-1").
		Return([]domain.SupplierPayment{}, nil).Once()

	w := s.serve("/financial/payments?supplierID=sup-1")

	s.Equal(http.StatusOK, w.Code)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *SupplierHandlerTestSuite) TestListPaymentsForSupplier_UsesPathParam() {
	s.mockRepo.On("ListPayments", mock.Anything, "sup-9").
		Return([]domain.SupplierPayment{}, nil).Once()

	w := s.serve("/financial/suppliers/sup-9/payments")

	s.Equal(http.StatusOK, w.Code)
	s.mockRepo.AssertExpectations(s.T())
}

func TestSupplierHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SupplierHandlerTestSuite))
}
