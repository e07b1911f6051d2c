package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FeedbackReport is a sales rep's record of a client visit and its outcome.
type FeedbackReport struct {
	ReportID  string    `json:"reportID"`
	RepID     string    `json:"repID"`
	ClientID  string    `json:"clientID"`
	Country   string    `json:"country"`
	VisitDate time.Time `json:"visitDate"`
	Rating    int       `json:"rating"` // 1..5
	Comments  string    `json:"comments"`
	AuditFields
}

// VisibilityReport records in-store product visibility observed during a visit.
type VisibilityReport struct {
	ReportID   string          `json:"reportID"`
	RepID      string          `json:"repID"`
	ClientID   string          `json:"clientID"`
	Country    string          `json:"country"`
	VisitDate  time.Time       `json:"visitDate"`
	ShelfShare decimal.Decimal `json:"shelfShare"` // Percentage 0..100
	Notes      string          `json:"notes"`
	AuditFields
}

// ReportFilter is the common filter set for the two report listings.
type ReportFilter struct {
	Country string
	RepID   string
	From    *time.Time
	To      *time.Time
}
