package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus tracks the lifecycle of a supplier payment.
type PaymentStatus string

const (
	PaymentInPay     PaymentStatus = "in_pay"
	PaymentConfirmed PaymentStatus = "confirmed"
)

// Supplier is a vendor master record.
type Supplier struct {
	SupplierID    string `json:"supplierID"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Country       string `json:"country"`
	AuditFields
}

// SupplierPayment is a payment raised against a supplier. It starts in
// in_pay and is posted to the ledger when confirmed; JournalID is set then.
type SupplierPayment struct {
	PaymentID   string          `json:"paymentID"`
	SupplierID  string          `json:"supplierID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Status      PaymentStatus   `json:"status"`
	JournalID   string          `json:"journalID,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	AuditFields
}
