package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates which side of the books a ledger entry sits on
type EntryType string

const (
	EntryTypeDebit  EntryType = "debit"
	EntryTypeCredit EntryType = "credit"
)

// TransactionType classifies the business operation behind a ledger entry
type TransactionType string

const (
	TransactionTypeSale       TransactionType = "sale"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeFee        TransactionType = "fee"
	TransactionTypeRefund     TransactionType = "refund"
	TransactionTypeChargeback TransactionType = "chargeback"
	TransactionTypeAdjustment TransactionType = "adjustment"
	TransactionTypeCashIn     TransactionType = "cash_in"
	TransactionTypeCashOut    TransactionType = "cash_out"
)

// IsDebitClass reports whether the transaction type always moves money out
func (t TransactionType) IsDebitClass() bool {
	switch t {
	case TransactionTypeWithdrawal, TransactionTypeFee, TransactionTypeCashOut,
		TransactionTypeRefund, TransactionTypeChargeback:
		return true
	}
	return false
}

// EntryStatus is the lifecycle state of a ledger entry
type EntryStatus string

const (
	EntryStatusPending   EntryStatus = "pending"
	EntryStatusConfirmed EntryStatus = "confirmed"
	EntryStatusReversed  EntryStatus = "reversed"
)

// LedgerEntry is one immutable signed monetary movement. Only status,
// confirmed_at and reversed_at may change after creation; amounts and the
// running balance are written once.
type LedgerEntry struct {
	ID                    int64           `json:"id" db:"id"`
	TenantID              string          `json:"tenant_id" db:"tenant_id"`
	EntryType             EntryType       `json:"entry_type" db:"entry_type"`
	TransactionType       TransactionType `json:"transaction_type" db:"transaction_type"`
	Amount                decimal.Decimal `json:"amount" db:"amount"`
	RunningBalance        decimal.Decimal `json:"running_balance" db:"running_balance"`
	ReferenceID           *string         `json:"reference_id,omitempty" db:"reference_id"`
	OrderID               *string         `json:"order_id,omitempty" db:"order_id"`
	WithdrawalID          *string         `json:"withdrawal_id,omitempty" db:"withdrawal_id"`
	ExternalTransactionID *string         `json:"external_transaction_id,omitempty" db:"external_transaction_id"`
	Description           string          `json:"description" db:"description"`
	Status                EntryStatus     `json:"status" db:"status"`
	Metadata              Metadata        `json:"metadata,omitempty" db:"metadata"`
	IPAddress             string          `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent             string          `json:"user_agent,omitempty" db:"user_agent"`
	SessionID             string          `json:"session_id,omitempty" db:"session_id"`
	CreatedAt             time.Time       `json:"created_at" db:"created_at"`
	ConfirmedAt           *time.Time      `json:"confirmed_at,omitempty" db:"confirmed_at"`
	ReversedAt            *time.Time      `json:"reversed_at,omitempty" db:"reversed_at"`
}

// SignedEffect returns the entry's contribution to the running balance:
// positive for credits, negative for debits.
func (e *LedgerEntry) SignedEffect() decimal.Decimal {
	if e.EntryType == EntryTypeDebit {
		return e.Amount.Neg()
	}
	return e.Amount
}

// LedgerOperation is the caller's intent to move money on a tenant's ledger.
// Amount is the unsigned magnitude except for adjustments, which may carry
// a sign.
type LedgerOperation struct {
	TenantID              string          `json:"tenant_id"`
	TransactionType       TransactionType `json:"transaction_type"`
	Amount                decimal.Decimal `json:"amount"`
	ReferenceID           *string         `json:"reference_id,omitempty"`
	OrderID               *string         `json:"order_id,omitempty"`
	WithdrawalID          *string         `json:"withdrawal_id,omitempty"`
	ExternalTransactionID *string         `json:"external_transaction_id,omitempty"`
	Description           string          `json:"description"`
	Metadata              Metadata        `json:"metadata,omitempty"`
}

// OperationContext carries the request-scoped caller identity attached to
// every audit record
type OperationContext struct {
	UserID    *string `json:"user_id,omitempty"`
	IPAddress string  `json:"ip_address,omitempty"`
	UserAgent string  `json:"user_agent,omitempty"`
	SessionID string  `json:"session_id,omitempty"`
}

// SnapshotType classifies what triggered a balance snapshot
type SnapshotType string

const (
	SnapshotTypeTransaction    SnapshotType = "transaction"
	SnapshotTypeDaily          SnapshotType = "daily"
	SnapshotTypeReconciliation SnapshotType = "reconciliation"
	SnapshotTypeManual         SnapshotType = "manual"
)

// BalanceSnapshot is a point-in-time balance capture; never mutated
type BalanceSnapshot struct {
	ID                int64           `json:"id" db:"id"`
	TenantID          string          `json:"tenant_id" db:"tenant_id"`
	Balance           decimal.Decimal `json:"balance" db:"balance"`
	PendingBalance    decimal.Decimal `json:"pending_balance" db:"pending_balance"`
	LastLedgerEntryID int64           `json:"last_ledger_entry_id" db:"last_ledger_entry_id"`
	SnapshotType      SnapshotType    `json:"snapshot_type" db:"snapshot_type"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
}
