package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateManagerRequest defines the data needed to create a sales manager.
// Channels are validated against the known channel types and replace any
// stored assignments wholesale.
type CreateManagerRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"omitempty,email"`
	Phone    string   `json:"phone"`
	Country  string   `json:"country" binding:"required"`
	Region   string   `json:"region"`
	Channels []string `json:"channels" binding:"dive,channeltype"`
}

// UpdateManagerRequest defines the data allowed for updating a manager.
type UpdateManagerRequest struct {
	Name     *string  `json:"name"`
	Email    *string  `json:"email" binding:"omitempty,email"`
	Phone    *string  `json:"phone"`
	Country  *string  `json:"country"`
	Region   *string  `json:"region"`
	Channels []string `json:"channels" binding:"omitempty,dive,channeltype"`
}

// CreateSalesRepRequest defines the data needed to create a sales rep.
type CreateSalesRepRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone"`
	Country   string `json:"country" binding:"required"`
	Region    string `json:"region"`
	ManagerID string `json:"managerID"`
}

// UpdateSalesRepRequest defines the data allowed for updating a sales rep.
type UpdateSalesRepRequest struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
	Country   *string `json:"country"`
	Region    *string `json:"region"`
	ManagerID *string `json:"managerID"`
}

// CreateClientRequest defines the data needed to create a client.
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country" binding:"required"`
	Region  string `json:"region"`
	Address string `json:"address"`
	RepID   string `json:"repID"`
}

// UpdateClientRequest defines the data allowed for updating a client.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Country *string `json:"country"`
	Region  *string `json:"region"`
	Address *string `json:"address"`
	RepID   *string `json:"repID"`
}

// CreateNoticeRequest defines the data needed to publish a notice.
type CreateNoticeRequest struct {
	Title   string `json:"title" binding:"required"`
	Body    string `json:"body" binding:"required"`
	Country string `json:"country"`
}

// UpdateNoticeRequest defines the data allowed for updating a notice.
type UpdateNoticeRequest struct {
	Title   *string `json:"title"`
	Body    *string `json:"body"`
	Country *string `json:"country"`
	Status  *string `json:"status" binding:"omitempty,oneof=Active Archived"`
}

// CreateTaskRequest defines the data needed to create a task.
type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	AssigneeID  string     `json:"assigneeID"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateTaskRequest defines the data allowed for updating a task.
type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	AssigneeID  *string    `json:"assigneeID"`
	DueDate     *time.Time `json:"dueDate"`
	Status      *string    `json:"status" binding:"omitempty,oneof=Pending 'In Progress' Completed"`
}

// CreateFeedbackReportRequest records a client visit outcome.
type CreateFeedbackReportRequest struct {
	RepID     string    `json:"repID" binding:"required"`
	ClientID  string    `json:"clientID" binding:"required"`
	Country   string    `json:"country" binding:"required"`
	VisitDate time.Time `json:"visitDate" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comments  string    `json:"comments"`
}

// CreateVisibilityReportRequest records observed in-store visibility.
type CreateVisibilityReportRequest struct {
	RepID      string          `json:"repID" binding:"required"`
	ClientID   string          `json:"clientID" binding:"required"`
	Country    string          `json:"country" binding:"required"`
	VisitDate  time.Time       `json:"visitDate" binding:"required"`
	ShelfShare decimal.Decimal `json:"shelfShare"`
	Notes      string          `json:"notes"`
}

// ReportQueryParams are the shared list filters for the report endpoints.
type ReportQueryParams struct {
	Country string `form:"country"`
	RepID   string `form:"repID"`
	From    string `form:"from"` // YYYY-MM-DD
	To      string `form:"to"`   // YYYY-MM-DD
}
