package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmateev/biz_admin_app/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a ledger account.
type CreateAccountRequest struct {
	Name        string          `json:"name" binding:"required"`
	AccountType string          `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	Description string          `json:"description"`
	Balance     decimal.Decimal `json:"balance"` // Opening balance, defaults to zero
}

// UpdateAccountRequest defines the data allowed for updating an account.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

// JournalLineRequest is one debit or credit line of a journal payload.
type JournalLineRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	LineType  domain.LineType `json:"lineType" binding:"required,oneof=DEBIT CREDIT"`
	Notes     string          `json:"notes"`
}

// CreateJournalRequest defines the data needed to post a journal.
type CreateJournalRequest struct {
	JournalDate time.Time            `json:"journalDate" binding:"required"`
	Description string               `json:"description" binding:"required"`
	Lines       []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// CreateSupplierRequest defines the data needed to create a supplier.
type CreateSupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email" binding:"omitempty,email"`
	Country       string `json:"country"`
}

// UpdateSupplierRequest defines the data allowed for updating a supplier.
type UpdateSupplierRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contactPerson"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Country       *string `json:"country"`
}

// CreatePaymentRequest defines the data needed to raise a supplier payment.
type CreatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	PaymentDate time.Time       `json:"paymentDate" binding:"required"`
	Notes       string          `json:"notes"`
}

// ConfirmPaymentRequest names the accounts the confirmation journal posts
// against: the debit side (expense or payables) and the credit side (cash).
type ConfirmPaymentRequest struct {
	DebitAccountID  string `json:"debitAccountID" binding:"required"`
	CreditAccountID string `json:"creditAccountID" binding:"required"`
}

// CreateReceivableRequest defines the data needed to record a receivable.
type CreateReceivableRequest struct {
	ClientID  string          `json:"clientID" binding:"required"`
	InvoiceNo string          `json:"invoiceNo" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	DueDate   time.Time       `json:"dueDate" binding:"required"`
}

// BulkPaymentRequest settles a batch of receivables in one transaction. The
// batch journal debits the cash account and credits the receivables account
// for the batch total.
type BulkPaymentRequest struct {
	ReceivableIDs   []string  `json:"receivableIDs" binding:"required,min=1"`
	PaymentDate     time.Time `json:"paymentDate" binding:"required"`
	DebitAccountID  string    `json:"debitAccountID" binding:"required"`
	CreditAccountID string    `json:"creditAccountID" binding:"required"`
}

// CreatePayableRequest defines the data needed to record a payable.
type CreatePayableRequest struct {
	SupplierID string          `json:"supplierID" binding:"required"`
	InvoiceNo  string          `json:"invoiceNo" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
	DueDate    time.Time       `json:"dueDate" binding:"required"`
}

// SettlePayableRequest names the accounts the settlement journal posts
// against: the debit side (payables) and the credit side (cash).
type SettlePayableRequest struct {
	DebitAccountID  string `json:"debitAccountID" binding:"required"`
	CreditAccountID string `json:"creditAccountID" binding:"required"`
}

// CreateEquityEntryRequest defines one equity contribution or draw.
type CreateEquityEntryRequest struct {
	AccountID string          `json:"accountID" binding:"required"`
	EntryType string          `json:"entryType" binding:"required,oneof=contribution draw"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	EntryDate time.Time       `json:"entryDate" binding:"required"`
	Notes     string          `json:"notes"`
}

// BulkEquityRequest inserts a batch of equity entries atomically.
type BulkEquityRequest struct {
	Entries []CreateEquityEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

// CreateDepreciationEntryRequest defines one period's depreciation posting.
type CreateDepreciationEntryRequest struct {
	AssetAccountID   string          `json:"assetAccountID" binding:"required"`
	ExpenseAccountID string          `json:"expenseAccountID" binding:"required"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	Period           string          `json:"period" binding:"required"`
	Notes            string          `json:"notes"`
}

// BulkDepreciationRequest inserts a batch of depreciation entries atomically.
type BulkDepreciationRequest struct {
	Entries []CreateDepreciationEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

// CreateCashAccountRequest defines the data needed to open a cash account.
type CreateCashAccountRequest struct {
	Name           string          `json:"name" binding:"required"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
}

// UpdateCashAccountRequest defines the data allowed for updating a cash account.
type UpdateCashAccountRequest struct {
	Name     *string `json:"name"`
	IsActive *bool   `json:"isActive"`
}

// CreateCashEntryRequest records one signed movement on a cash account.
type CreateCashEntryRequest struct {
	EntryDate   time.Time       `json:"entryDate" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// CashLedgerResponse is one page of a cash account's ledger with running balances.
type CashLedgerResponse struct {
	CashAccountID  string             `json:"cashAccountID"`
	OpeningBalance decimal.Decimal    `json:"openingBalance"`
	Entries        []domain.CashEntry `json:"entries"`
	Total          int64              `json:"total"`
	Page           int                `json:"page"`
	Limit          int                `json:"limit"`
}
