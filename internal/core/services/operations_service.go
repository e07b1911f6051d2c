package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kmateev/biz_admin_app/internal/apperrors"
	"github.com/kmateev/biz_admin_app/internal/core/domain"
	portsrepo "github.com/kmateev/biz_admin_app/internal/core/ports/repositories"
	"github.com/kmateev/biz_admin_app/internal/dto"
	"github.com/kmateev/biz_admin_app/internal/middleware"
)

// ServiceTypeService manages the service type catalog.
type ServiceTypeService struct {
	serviceTypeRepo portsrepo.ServiceTypeRepository
}

func NewServiceTypeService(serviceTypeRepo portsrepo.ServiceTypeRepository) *ServiceTypeService {
	return &ServiceTypeService{serviceTypeRepo: serviceTypeRepo}
}

func (s *ServiceTypeService) CreateServiceType(ctx context.Context, req dto.CreateServiceTypeRequest, creatorUserID string) (*domain.ServiceType, error) {
	now := time.Now()
	st := domain.ServiceType{
		ServiceTypeID: uuid.NewString(),
		Name:          req.Name,
		Description:   req.Description,
		AuditFields:   domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.serviceTypeRepo.SaveServiceType(ctx, st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *ServiceTypeService) GetServiceTypeByID(ctx context.Context, serviceTypeID string) (*domain.ServiceType, error) {
	return s.serviceTypeRepo.FindServiceTypeByID(ctx, serviceTypeID)
}

func (s *ServiceTypeService) ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error) {
	return s.serviceTypeRepo.ListServiceTypes(ctx)
}

func (s *ServiceTypeService) UpdateServiceType(ctx context.Context, serviceTypeID string, req dto.UpdateServiceTypeRequest, updaterUserID string) (*domain.ServiceType, error) {
	st, err := s.serviceTypeRepo.FindServiceTypeByID(ctx, serviceTypeID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Description != nil {
		st.Description = *req.Description
	}
	st.Touch(updaterUserID, time.Now())

	if err := s.serviceTypeRepo.UpdateServiceType(ctx, *st); err != nil {
		return nil, err
	}
	return st, nil
}

// DeleteServiceType hard-deletes the type. Fails with ErrConflict while
// requests still reference it.
func (s *ServiceTypeService) DeleteServiceType(ctx context.Context, serviceTypeID string) error {
	return s.serviceTypeRepo.DeleteServiceType(ctx, serviceTypeID)
}

// RequestService manages pickup/delivery service requests.
type RequestService struct {
	requestRepo     portsrepo.RequestRepository
	serviceTypeRepo portsrepo.ServiceTypeRepository
	userRepo        portsrepo.UserRepository
}

func NewRequestService(requestRepo portsrepo.RequestRepository, serviceTypeRepo portsrepo.ServiceTypeRepository, userRepo portsrepo.UserRepository) *RequestService {
	return &RequestService{
		requestRepo:     requestRepo,
		serviceTypeRepo: serviceTypeRepo,
		userRepo:        userRepo,
	}
}

// CreateRequest validates the referenced user and service type, then stores
// the request. Status always starts pending and myStatus defaults to 0.
func (s *RequestService) CreateRequest(ctx context.Context, req dto.CreateRequestRequest, creatorUserID string) (*domain.ServiceRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.userRepo.FindUserByID(ctx, req.UserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: user %s does not exist", apperrors.ErrValidation, req.UserID)
		}
		return nil, fmt.Errorf("failed to verify requesting user: %w", err)
	}
	if _, err := s.serviceTypeRepo.FindServiceTypeByID(ctx, req.ServiceTypeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: service type %s does not exist", apperrors.ErrValidation, req.ServiceTypeID)
		}
		return nil, fmt.Errorf("failed to verify service type: %w", err)
	}

	myStatus := 0
	if req.MyStatus != nil {
		myStatus = *req.MyStatus
	}

	now := time.Now()
	request := domain.ServiceRequest{
		RequestID:        uuid.NewString(),
		UserID:           req.UserID,
		UserName:         req.UserName,
		ServiceTypeID:    req.ServiceTypeID,
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
		PickupDate:       req.PickupDate,
		Description:      req.Description,
		Priority:         req.Priority,
		Status:           domain.RequestPending,
		MyStatus:         myStatus,
		AuditFields:      domain.NewAuditFields(creatorUserID, now),
	}

	if err := s.requestRepo.SaveRequest(ctx, request); err != nil {
		return nil, err
	}
	logger.Info("Service request created", "request_id", request.RequestID, "service_type_id", request.ServiceTypeID)
	return &request, nil
}

func (s *RequestService) GetRequestByID(ctx context.Context, requestID string) (*domain.ServiceRequest, error) {
	return s.requestRepo.FindRequestByID(ctx, requestID)
}

func (s *RequestService) ListRequests(ctx context.Context, status, priority string) ([]domain.ServiceRequest, error) {
	return s.requestRepo.ListRequests(ctx, status, priority)
}

// PatchRequest applies a partial update. An empty patch is a validation error.
func (s *RequestService) PatchRequest(ctx context.Context, requestID string, req dto.PatchRequestRequest, updaterUserID string) (*domain.ServiceRequest, error) {
	patch := domain.RequestPatch{
		PickupLocation:   req.PickupLocation,
		DeliveryLocation: req.DeliveryLocation,
		PickupDate:       req.PickupDate,
		Description:      req.Description,
		Priority:         req.Priority,
		MyStatus:         req.MyStatus,
	}
	if req.Status != nil {
		status := domain.RequestStatus(*req.Status)
		patch.Status = &status
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: patch contains no fields", apperrors.ErrValidation)
	}

	if err := s.requestRepo.PatchRequest(ctx, requestID, patch, updaterUserID, time.Now()); err != nil {
		return nil, err
	}
	return s.requestRepo.FindRequestByID(ctx, requestID)
}

// StaffService manages the employee directory.
type StaffService struct {
	staffRepo portsrepo.StaffRepository
}

func NewStaffService(staffRepo portsrepo.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

func (s *StaffService) CreateStaff(ctx context.Context, req dto.CreateStaffRequest, creatorUserID string) (*domain.Staff, error) {
	now := time.Now()
	staff := domain.Staff{
		StaffID:     uuid.NewString(),
		Name:        req.Name,
		PhotoURL:    req.PhotoURL,
		Position:    req.Position,
		Department:  req.Department,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}
	if err := s.staffRepo.SaveStaff(ctx, staff); err != nil {
		return nil, err
	}
	return &staff, nil
}

func (s *StaffService) GetStaffByID(ctx context.Context, staffID string) (*domain.Staff, error) {
	return s.staffRepo.FindStaffByID(ctx, staffID)
}

func (s *StaffService) ListStaff(ctx context.Context) ([]domain.Staff, error) {
	return s.staffRepo.ListStaff(ctx)
}

func (s *StaffService) UpdateStaff(ctx context.Context, staffID string, req dto.UpdateStaffRequest, updaterUserID string) (*domain.Staff, error) {
	staff, err := s.staffRepo.FindStaffByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.PhotoURL != nil {
		staff.PhotoURL = *req.PhotoURL
	}
	if req.Position != nil {
		staff.Position = *req.Position
	}
	if req.Department != nil {
		staff.Department = *req.Department
	}
	staff.Touch(updaterUserID, time.Now())

	if err := s.staffRepo.UpdateStaff(ctx, *staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *StaffService) DeleteStaff(ctx context.Context, staffID string) error {
	return s.staffRepo.DeleteStaff(ctx, staffID)
}
