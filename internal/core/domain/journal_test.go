package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func line(amount int64, lt LineType) JournalLine {
	return JournalLine{Amount: decimal.NewFromInt(amount), LineType: lt}
}

func TestSumLines_Balanced(t *testing.T) {
	debits, credits := SumLines([]JournalLine{
		line(100, Debit),
		line(100, Credit),
	})
	assert.True(t, debits.Equal(decimal.NewFromInt(100)))
	assert.True(t, credits.Equal(decimal.NewFromInt(100)))
	assert.True(t, debits.Equal(credits))
}

func TestSumLines_Unbalanced(t *testing.T) {
	debits, credits := SumLines([]JournalLine{
		line(100, Debit),
		line(90, Credit),
	})
	assert.True(t, debits.Equal(decimal.NewFromInt(100)))
	assert.True(t, credits.Equal(decimal.NewFromInt(90)))
	assert.False(t, debits.Equal(credits))
}

func TestSignedAmount_Conventions(t *testing.T) {
	tests := []struct {
		name        string
		lineType    LineType
		accountType AccountType
		want        int64
	}{
		{"debit to asset is positive", Debit, Asset, 50},
		{"credit to asset is negative", Credit, Asset, -50},
		{"debit to expense is positive", Debit, Expense, 50},
		{"credit to liability is positive", Credit, Liability, 50},
		{"debit to liability is negative", Debit, Liability, -50},
		{"credit to equity is positive", Credit, Equity, 50},
		{"debit to revenue is negative", Debit, Revenue, -50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := line(50, tt.lineType)
			got := l.SignedAmount(tt.accountType)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s want %d", got, tt.want)
		})
	}
}

func TestComputeRunningBalances(t *testing.T) {
	entries := []CashEntry{
		{Amount: decimal.NewFromInt(200)},
		{Amount: decimal.NewFromInt(-50)},
		{Amount: decimal.NewFromInt(25)},
	}

	entries = ComputeRunningBalances(decimal.NewFromInt(1000), entries)

	assert.True(t, entries[0].RunningBalance.Equal(decimal.NewFromInt(1200)))
	assert.True(t, entries[1].RunningBalance.Equal(decimal.NewFromInt(1150)))
	assert.True(t, entries[2].RunningBalance.Equal(decimal.NewFromInt(1175)))
}

func TestComputeRunningBalances_Empty(t *testing.T) {
	entries := ComputeRunningBalances(decimal.NewFromInt(10), nil)
	assert.Empty(t, entries)
}
