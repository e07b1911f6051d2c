package repositories

import (
	"context"
	"time"

	"github.com/kmateev/biz_admin_app/internal/core/domain"
)

// ServiceTypeRepository defines persistence operations for service types.
type ServiceTypeRepository interface {
	SaveServiceType(ctx context.Context, st domain.ServiceType) error
	FindServiceTypeByID(ctx context.Context, serviceTypeID string) (*domain.ServiceType, error)
	ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error)
	UpdateServiceType(ctx context.Context, st domain.ServiceType) error
	// DeleteServiceType returns apperrors.ErrConflict while requests still
	// reference the type.
	DeleteServiceType(ctx context.Context, serviceTypeID string) error
}

// RequestRepository defines persistence operations for service requests.
type RequestRepository interface {
	SaveRequest(ctx context.Context, req domain.ServiceRequest) error
	FindRequestByID(ctx context.Context, requestID string) (*domain.ServiceRequest, error)
	ListRequests(ctx context.Context, status, priority string) ([]domain.ServiceRequest, error)
	// PatchRequest applies a partial update, emitting assignments only for
	// fields present in the patch.
	PatchRequest(ctx context.Context, requestID string, patch domain.RequestPatch, userID string, now time.Time) error
}

// StaffRepository defines persistence operations for staff directory entries.
type StaffRepository interface {
	SaveStaff(ctx context.Context, staff domain.Staff) error
	FindStaffByID(ctx context.Context, staffID string) (*domain.Staff, error)
	ListStaff(ctx context.Context) ([]domain.Staff, error)
	UpdateStaff(ctx context.Context, staff domain.Staff) error
	DeleteStaff(ctx context.Context, staffID string) error
}
