package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineKey(t *testing.T) {
	a := TransactionLine{TransactionID: 42, LineNumber: 1}
	b := TransactionLine{TransactionID: 42, LineNumber: 1, Memo: "different payload"}
	c := TransactionLine{TransactionID: 42, LineNumber: 2}

	assert.Equal(t, a.Key(), b.Key(), "key depends on identity fields only")
	assert.NotEqual(t, a.Key(), c.Key())
	assert.Equal(t, LineKey{TransactionID: 42, LineNumber: 1}, a.Key())
}

func TestReconciled(t *testing.T) {
	var line TransactionLine
	assert.False(t, line.Reconciled())

	now := line.CreatedAt
	line.DateReconciled = &now
	assert.True(t, line.Reconciled())
}

func TestLinesTotal(t *testing.T) {
	lines := []TransactionLine{
		{LineNumber: 1, Amount: decimal.RequireFromString("100.01")},
		{LineNumber: 2, Amount: decimal.RequireFromString("-0.01")},
		{LineNumber: 3, Amount: decimal.RequireFromString("-100.00")},
	}
	assert.True(t, LinesTotal(lines).IsZero())

	lines[2].Amount = decimal.RequireFromString("-99.99")
	assert.False(t, LinesTotal(lines).IsZero())

	assert.True(t, LinesTotal(nil).IsZero())
}
