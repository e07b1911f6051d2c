package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalStatus indicates the state of a journal entry.
type JournalStatus string

const (
	Posted   JournalStatus = "POSTED"
	Reversed JournalStatus = "REVERSED"
)

// LineType indicates whether a journal line is a Debit or a Credit.
type LineType string

const (
	Debit  LineType = "DEBIT"
	Credit LineType = "CREDIT"
)

// Journal represents a single, balanced financial event composed of multiple lines.
type Journal struct {
	JournalID   string        `json:"journalID"`
	JournalDate time.Time     `json:"journalDate"`
	Description string        `json:"description"`
	Status      JournalStatus `json:"status"`
	// ReversalOfJournalID links a reversing journal back to its original.
	ReversalOfJournalID string        `json:"reversalOfJournalID,omitempty"`
	Lines               []JournalLine `json:"lines,omitempty"`
	AuditFields
}

// JournalLine is a single debit or credit within a Journal, affecting one account.
type JournalLine struct {
	LineID    string          `json:"lineID"`
	JournalID string          `json:"journalID"`
	AccountID string          `json:"accountID"`
	Amount    decimal.Decimal `json:"amount"` // Always positive; direction comes from LineType
	LineType  LineType        `json:"lineType"`
	Notes     string          `json:"notes,omitempty"`
	AuditFields
}

// SignedAmount applies the standard accounting sign convention to a line
// amount given the account type it posts against:
// debits increase assets/expenses, credits increase liabilities/equity/revenue.
func (l JournalLine) SignedAmount(accountType AccountType) decimal.Decimal {
	amount := l.Amount
	isDebit := l.LineType == Debit

	switch accountType {
	case Asset, Expense:
		if !isDebit {
			amount = amount.Neg()
		}
	case Liability, Equity, Revenue:
		if isDebit {
			amount = amount.Neg()
		}
	}
	return amount
}

// SumLines returns the total debits and total credits across a set of lines.
func SumLines(lines []JournalLine) (debits, credits decimal.Decimal) {
	debits = decimal.Zero
	credits = decimal.Zero
	for _, line := range lines {
		if line.LineType == Debit {
			debits = debits.Add(line.Amount)
		} else {
			credits = credits.Add(line.Amount)
		}
	}
	return debits, credits
}
