package domain

import "time"

// RequestStatus is the processor-side status of a service request.
type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestInProgress RequestStatus = "in_progress"
	RequestCompleted  RequestStatus = "completed"
	RequestCancelled  RequestStatus = "cancelled"
)

// ServiceType is a catalog entry describing a kind of service request.
type ServiceType struct {
	ServiceTypeID string `json:"serviceTypeID"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	AuditFields
}

// ServiceRequest is a pickup/delivery service request raised by a user.
// Status is the processor's view; MyStatus is the requester's own flag and
// the two move independently.
type ServiceRequest struct {
	RequestID        string        `json:"requestID"`
	UserID           string        `json:"userID"`
	UserName         string        `json:"userName"`
	ServiceTypeID    string        `json:"serviceTypeID"`
	PickupLocation   string        `json:"pickupLocation"`
	DeliveryLocation string        `json:"deliveryLocation"`
	PickupDate       time.Time     `json:"pickupDate"`
	Description      string        `json:"description"`
	Priority         string        `json:"priority"`
	Status           RequestStatus `json:"status"`
	MyStatus         int           `json:"myStatus"`
	AuditFields
}

// RequestPatch carries a partial update of a service request. Nil fields are
// left untouched; the repository only emits SET assignments for present ones.
type RequestPatch struct {
	PickupLocation   *string
	DeliveryLocation *string
	PickupDate       *time.Time
	Description      *string
	Priority         *string
	Status           *RequestStatus
	MyStatus         *int
}

// IsEmpty reports whether the patch carries no changes at all.
func (p RequestPatch) IsEmpty() bool {
	return p.PickupLocation == nil && p.DeliveryLocation == nil && p.PickupDate == nil &&
		p.Description == nil && p.Priority == nil && p.Status == nil && p.MyStatus == nil
}
