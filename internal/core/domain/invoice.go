package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks whether an open receivable/payable has been settled.
type InvoiceStatus string

const (
	InvoiceOpen InvoiceStatus = "open"
	InvoicePaid InvoiceStatus = "paid"
)

// Receivable is money owed to the business by a client, per invoice.
type Receivable struct {
	ReceivableID string          `json:"receivableID"`
	ClientID     string          `json:"clientID"`
	InvoiceNo    string          `json:"invoiceNo"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      time.Time       `json:"dueDate"`
	Status       InvoiceStatus   `json:"status"`
	JournalID    string          `json:"journalID,omitempty"` // Set when settled
	PaidAt       *time.Time      `json:"paidAt,omitempty"`
	AuditFields
}

// Payable is money owed by the business to a supplier, per invoice.
type Payable struct {
	PayableID  string          `json:"payableID"`
	SupplierID string          `json:"supplierID"`
	InvoiceNo  string          `json:"invoiceNo"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"dueDate"`
	Status     InvoiceStatus   `json:"status"`
	JournalID  string          `json:"journalID,omitempty"` // Set when settled
	PaidAt     *time.Time      `json:"paidAt,omitempty"`
	AuditFields
}
