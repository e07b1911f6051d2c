package dto

import "time"

// CreateServiceTypeRequest defines the data needed to create a service type.
type CreateServiceTypeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateServiceTypeRequest defines the data allowed for updating a service type.
type UpdateServiceTypeRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateRequestRequest defines the data needed to raise a service request.
type CreateRequestRequest struct {
	UserID           string    `json:"userID" binding:"required"`
	UserName         string    `json:"userName" binding:"required"`
	ServiceTypeID    string    `json:"serviceTypeID" binding:"required"`
	PickupLocation   string    `json:"pickupLocation" binding:"required"`
	DeliveryLocation string    `json:"deliveryLocation" binding:"required"`
	PickupDate       time.Time `json:"pickupDate" binding:"required"`
	Description      string    `json:"description"`
	Priority         string    `json:"priority" binding:"omitempty,oneof=low normal high"`
	MyStatus         *int      `json:"myStatus"` // Defaults to 0 when absent
}

// PatchRequestRequest is the partial-update payload for a service request.
// Absent fields leave stored values untouched.
type PatchRequestRequest struct {
	PickupLocation   *string    `json:"pickupLocation"`
	DeliveryLocation *string    `json:"deliveryLocation"`
	PickupDate       *time.Time `json:"pickupDate"`
	Description      *string    `json:"description"`
	Priority         *string    `json:"priority" binding:"omitempty,oneof=low normal high"`
	Status           *string    `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	MyStatus         *int       `json:"myStatus"`
}

// CreateStaffRequest defines the data needed to create a staff entry.
type CreateStaffRequest struct {
	Name       string `json:"name" binding:"required"`
	PhotoURL   string `json:"photoURL"`
	Position   string `json:"position" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// UpdateStaffRequest defines the data allowed for updating a staff entry.
type UpdateStaffRequest struct {
	Name       *string `json:"name"`
	PhotoURL   *string `json:"photoURL"`
	Position   *string `json:"position"`
	Department *string `json:"department"`
}
