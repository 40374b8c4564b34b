package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lojinha/ledgercore/internal/pkg/models"
)

var (
	riskAmountHigh   = decimal.NewFromInt(10000)
	riskAmountMedium = decimal.NewFromInt(5000)
	riskAmountLow    = decimal.NewFromInt(1000)
)

// CalculateRiskScore is a deterministic heuristic annotating how
// suspicious an operation looks, 0-100. The score is recorded in the audit
// log only; it never blocks an operation.
func CalculateRiskScore(op models.LedgerOperation, now time.Time) int {
	score := 0
	magnitude := op.Amount.Abs()

	// Highest amount bracket wins
	switch {
	case magnitude.GreaterThan(riskAmountHigh):
		score += 30
	case magnitude.GreaterThan(riskAmountMedium):
		score += 20
	case magnitude.GreaterThan(riskAmountLow):
		score += 10
	}

	switch op.TransactionType {
	case models.TransactionTypeCashOut, models.TransactionTypeWithdrawal:
		score += 20
	case models.TransactionTypeAdjustment:
		score += 40
	}

	if hour := now.Local().Hour(); hour < 6 || hour > 22 {
		score += 15
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	return score
}
