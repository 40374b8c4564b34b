package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/lojinha/ledgercore/internal/pkg/models"
	"github.com/lojinha/ledgercore/services/ledger"
)

// CalculateBalance is the pure balance transition function: given the
// current balance and an operation it returns the entry direction and the
// balance after the entry. Amount is the unsigned magnitude except for
// adjustments, which may carry a sign.
func CalculateBalance(currentBalance decimal.Decimal, transactionType models.TransactionType, amount decimal.Decimal) (models.EntryType, decimal.Decimal, error) {
	switch transactionType {
	case models.TransactionTypeSale, models.TransactionTypeCashIn:
		return models.EntryTypeCredit, currentBalance.Add(amount), nil

	case models.TransactionTypeWithdrawal, models.TransactionTypeFee,
		models.TransactionTypeCashOut, models.TransactionTypeRefund,
		models.TransactionTypeChargeback:
		return models.EntryTypeDebit, currentBalance.Sub(amount), nil

	case models.TransactionTypeAdjustment:
		// Sign decides direction; a negative amount subtracts.
		if amount.IsNegative() {
			return models.EntryTypeDebit, currentBalance.Add(amount), nil
		}
		return models.EntryTypeCredit, currentBalance.Add(amount), nil

	default:
		return "", decimal.Zero, ledger.NewValidationError(
			ledger.CodeUnknownTransactionType,
			"unknown transaction type: %s", transactionType,
		)
	}
}
