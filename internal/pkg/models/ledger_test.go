package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSignedEffect(t *testing.T) {
	credit := &LedgerEntry{EntryType: EntryTypeCredit, Amount: decimal.RequireFromString("25.50")}
	assert.True(t, credit.SignedEffect().Equal(decimal.RequireFromString("25.50")))

	debit := &LedgerEntry{EntryType: EntryTypeDebit, Amount: decimal.RequireFromString("40.00")}
	assert.True(t, debit.SignedEffect().Equal(decimal.RequireFromString("-40.00")))
}

func TestIsDebitClass(t *testing.T) {
	debitClass := []TransactionType{
		TransactionTypeWithdrawal, TransactionTypeFee, TransactionTypeCashOut,
		TransactionTypeRefund, TransactionTypeChargeback,
	}
	for _, tt := range debitClass {
		assert.True(t, tt.IsDebitClass(), "%s should be debit-class", tt)
	}

	creditClass := []TransactionType{TransactionTypeSale, TransactionTypeCashIn, TransactionTypeAdjustment}
	for _, tt := range creditClass {
		assert.False(t, tt.IsDebitClass(), "%s should not be debit-class", tt)
	}
}

func TestMetadataMerge_RightWins(t *testing.T) {
	left := Metadata{"a": "1", "b": "2"}
	right := Metadata{"b": "3", "c": "4"}

	merged := left.Merge(right)

	assert.Equal(t, Metadata{"a": "1", "b": "3", "c": "4"}, merged)

	// Inputs are not mutated
	assert.Equal(t, Metadata{"a": "1", "b": "2"}, left)
	assert.Equal(t, Metadata{"b": "3", "c": "4"}, right)
}

func TestMetadataMerge_NilSides(t *testing.T) {
	var left Metadata
	right := Metadata{"a": "1"}

	assert.Equal(t, Metadata{"a": "1"}, left.Merge(right))
	assert.Equal(t, Metadata{"a": "1"}, right.Merge(nil))
}
