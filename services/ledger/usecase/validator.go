package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/lojinha/ledgercore/internal/pkg/models"
	"github.com/lojinha/ledgercore/services/ledger"
)

// OperationValidator enforces monetary business rules before any ledger
// write is allowed
type OperationValidator struct {
	dailyWithdrawalCap decimal.Decimal
	maxTransactionSize decimal.Decimal
}

// NewOperationValidator creates a validator from ledger configuration.
// Unparseable limits fall back to the documented defaults.
func NewOperationValidator(cfg models.LedgerConfig) *OperationValidator {
	dailyCap, err := decimal.NewFromString(cfg.DailyWithdrawalCap)
	if err != nil {
		dailyCap = decimal.NewFromInt(50000)
	}
	maxSize, err := decimal.NewFromString(cfg.MaxTransactionSize)
	if err != nil {
		maxSize = decimal.NewFromInt(100000)
	}

	return &OperationValidator{
		dailyWithdrawalCap: dailyCap,
		maxTransactionSize: maxSize,
	}
}

// Validate rejects operations that violate monetary business rules.
// dailyDebits is the sum of the tenant's confirmed debit entries since
// local midnight; it is only consulted for withdrawal and cash_out.
func (v *OperationValidator) Validate(op models.LedgerOperation, currentBalance, dailyDebits decimal.Decimal) error {
	magnitude := op.Amount.Abs()

	if op.TransactionType == models.TransactionTypeAdjustment {
		if magnitude.IsZero() {
			return ledger.NewValidationError(ledger.CodeInvalidAmount,
				"adjustment amount must be nonzero")
		}
	} else if op.Amount.LessThanOrEqual(decimal.Zero) {
		return ledger.NewValidationError(ledger.CodeInvalidAmount,
			"amount must be positive, got %s", op.Amount.StringFixed(2))
	}

	if magnitude.GreaterThan(v.maxTransactionSize) {
		return ledger.NewValidationError(ledger.CodeMaxTransactionExceeded,
			"amount %s exceeds maximum transaction size %s",
			magnitude.StringFixed(2), v.maxTransactionSize.StringFixed(2))
	}

	if op.TransactionType.IsDebitClass() && op.Amount.GreaterThan(currentBalance) {
		return ledger.NewValidationError(ledger.CodeInsufficientBalance,
			"insufficient balance: amount %s exceeds balance %s",
			op.Amount.StringFixed(2), currentBalance.StringFixed(2))
	}

	if op.TransactionType == models.TransactionTypeWithdrawal ||
		op.TransactionType == models.TransactionTypeCashOut {
		if dailyDebits.Add(op.Amount).GreaterThan(v.dailyWithdrawalCap) {
			return ledger.NewValidationError(ledger.CodeDailyLimitExceeded,
				"daily withdrawal limit exceeded: %s already debited today, cap is %s",
				dailyDebits.StringFixed(2), v.dailyWithdrawalCap.StringFixed(2))
		}
	}

	return nil
}
