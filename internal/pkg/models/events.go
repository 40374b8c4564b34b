package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntryEvent is published whenever an entry is created, confirmed
// or reversed
type LedgerEntryEvent struct {
	EntryID         int64           `json:"entry_id"`
	TenantID        string          `json:"tenant_id"`
	TransactionType TransactionType `json:"transaction_type"`
	EntryType       EntryType       `json:"entry_type"`
	Amount          decimal.Decimal `json:"amount"`
	RunningBalance  decimal.Decimal `json:"running_balance"`
	Status          EntryStatus     `json:"status"`
	Timestamp       time.Time       `json:"timestamp"`
}

// ReconciliationEvent is published when a reconciliation run completes
type ReconciliationEvent struct {
	RecordID             string               `json:"record_id"`
	TenantID             string               `json:"tenant_id"`
	Status               ReconciliationStatus `json:"status"`
	Difference           decimal.Decimal      `json:"difference"`
	DiscrepancyCount     int                  `json:"discrepancy_count"`
	RequiresManualReview bool                 `json:"requires_manual_review"`
	Timestamp            time.Time            `json:"timestamp"`
}
