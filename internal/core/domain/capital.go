package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EquityEntryType distinguishes owner contributions from draws.
type EquityEntryType string

const (
	EquityContribution EquityEntryType = "contribution"
	EquityDraw         EquityEntryType = "draw"
)

// EquityEntry records an owner contribution to or draw from equity.
type EquityEntry struct {
	EntryID   string          `json:"entryID"`
	AccountID string          `json:"accountID"` // Equity account the entry posts against
	EntryType EquityEntryType `json:"entryType"`
	Amount    decimal.Decimal `json:"amount"`
	EntryDate time.Time       `json:"entryDate"`
	Notes     string          `json:"notes,omitempty"`
	AuditFields
}

// DepreciationEntry records one period's depreciation of an asset account
// into an expense account.
type DepreciationEntry struct {
	EntryID          string          `json:"entryID"`
	AssetAccountID   string          `json:"assetAccountID"`
	ExpenseAccountID string          `json:"expenseAccountID"`
	Amount           decimal.Decimal `json:"amount"`
	Period           string          `json:"period"` // e.g. "2026-08"
	Notes            string          `json:"notes,omitempty"`
	AuditFields
}
