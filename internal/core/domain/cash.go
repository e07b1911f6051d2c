package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashAccount is a bank or cash-box account tracked with its own ledger.
type CashAccount struct {
	CashAccountID  string          `json:"cashAccountID"`
	Name           string          `json:"name"`
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}

// CashEntry is one movement on a cash account. Amount is signed: positive
// for inflows, negative for outflows. RunningBalance is computed when the
// ledger is read, never stored.
type CashEntry struct {
	EntryID        string          `json:"entryID"`
	CashAccountID  string          `json:"cashAccountID"`
	EntryDate      time.Time       `json:"entryDate"`
	Description    string          `json:"description"`
	Amount         decimal.Decimal `json:"amount"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
	AuditFields
}

// ComputeRunningBalances walks entries in ledger order and fills in the
// cumulative balance starting from the account's opening balance.
func ComputeRunningBalances(opening decimal.Decimal, entries []CashEntry) []CashEntry {
	balance := opening
	for i := range entries {
		balance = balance.Add(entries[i].Amount)
		entries[i].RunningBalance = balance
	}
	return entries
}
