package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kmateev/biz_admin_app/internal/core/domain"
)

// AccountRepository defines persistence operations for ledger accounts.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, int64, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}

// JournalRepository persists balanced journals. Every write that touches a
// journal and its account balances happens inside one transaction.
type JournalRepository interface {
	// SaveJournal inserts the journal with its lines and applies the given
	// balance deltas to the affected accounts atomically.
	SaveJournal(ctx context.Context, journal domain.Journal, balanceChanges map[string]decimal.Decimal) error
	FindJournalByID(ctx context.Context, journalID string) (*domain.Journal, error)
	ListJournals(ctx context.Context, limit, offset int) ([]domain.Journal, int64, error)
	// ReverseJournal marks the original journal REVERSED and inserts the
	// reversing journal with its balance deltas in the same transaction.
	ReverseJournal(ctx context.Context, originalJournalID string, reversing domain.Journal, balanceChanges map[string]decimal.Decimal) error
}

// SupplierRepository defines persistence for suppliers and their payments.
type SupplierRepository interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeleteSupplier(ctx context.Context, supplierID string) error

	SavePayment(ctx context.Context, payment domain.SupplierPayment) error
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.SupplierPayment, error)
	ListPayments(ctx context.Context, supplierID string) ([]domain.SupplierPayment, error)
	// ConfirmPayment transitions in_pay -> confirmed and posts the ledger
	// journal in one transaction. Returns apperrors.ErrConflict if the
	// payment is not in_pay.
	ConfirmPayment(ctx context.Context, paymentID string, journal domain.Journal, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}

// ReceivableRepository defines persistence for client invoices owed to the business.
type ReceivableRepository interface {
	SaveReceivable(ctx context.Context, r domain.Receivable) error
	FindReceivableByID(ctx context.Context, receivableID string) (*domain.Receivable, error)
	ListReceivables(ctx context.Context, clientID string, status string) ([]domain.Receivable, error)
	// SettleBulk marks every given receivable paid and posts one batch
	// journal, all-or-nothing. Any missing or already-paid receivable rolls
	// the whole batch back.
	SettleBulk(ctx context.Context, receivableIDs []string, journal domain.Journal, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}

// PayableRepository defines persistence for supplier invoices owed by the business.
type PayableRepository interface {
	SavePayable(ctx context.Context, p domain.Payable) error
	FindPayableByID(ctx context.Context, payableID string) (*domain.Payable, error)
	ListPayables(ctx context.Context, supplierID string, status string) ([]domain.Payable, error)
	SettlePayable(ctx context.Context, payableID string, journal domain.Journal, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error
}

// EquityRepository defines persistence for owner equity entries.
type EquityRepository interface {
	SaveEquityEntry(ctx context.Context, e domain.EquityEntry) error
	ListEquityEntries(ctx context.Context, limit, offset int) ([]domain.EquityEntry, int64, error)
	// SaveEquityEntriesBulk inserts all entries in one transaction.
	SaveEquityEntriesBulk(ctx context.Context, entries []domain.EquityEntry) error
}

// DepreciationRepository defines persistence for depreciation entries.
type DepreciationRepository interface {
	SaveDepreciationEntry(ctx context.Context, e domain.DepreciationEntry) error
	ListDepreciationEntries(ctx context.Context, limit, offset int) ([]domain.DepreciationEntry, int64, error)
	SaveDepreciationEntriesBulk(ctx context.Context, entries []domain.DepreciationEntry) error
}

// CashRepository defines persistence for cash accounts and their ledgers.
type CashRepository interface {
	SaveCashAccount(ctx context.Context, a domain.CashAccount) error
	FindCashAccountByID(ctx context.Context, cashAccountID string) (*domain.CashAccount, error)
	ListCashAccounts(ctx context.Context) ([]domain.CashAccount, error)
	UpdateCashAccount(ctx context.Context, a domain.CashAccount) error
	DeactivateCashAccount(ctx context.Context, cashAccountID string, userID string, now time.Time) error

	SaveCashEntry(ctx context.Context, e domain.CashEntry) error
	// ListCashEntries returns one page of entries in ledger order plus the
	// total count and the sum of all amounts before the page, so the caller
	// can seed the running balance.
	ListCashEntries(ctx context.Context, cashAccountID string, limit, offset int) ([]domain.CashEntry, int64, decimal.Decimal, error)
}
